package domain

// ProductListQuery — производный запрос списка товаров (поиск + фильтр по категориям).
type ProductListQuery struct {
	Search      string
	CategoryIDs []ID
	Limit       int
	Year        int
}

// CategoryQuery — параметры выборки категорий.
type CategoryQuery struct {
	Parent    string
	SortOrder string
	Limit     int
}

// BlogQuery — параметры выборки статей блога.
type BlogQuery struct {
	Limit int
	Year  int
}

// PageQuery — параметры выборки статических страниц.
type PageQuery struct {
	Parent string
	Limit  int
}
