// Package widget — состояние презентационных компонентов (карусели, аккордеон, модалки).
// Состояние чистое; на сервере оно управляет no-JS навигацией через query-параметры.
package widget

import (
	"net/url"
	"strconv"
)

// Mode — поведение карусели на границах.
type Mode int

const (
	// Wrap — циклическая прокрутка (видео, слайдер на главной).
	Wrap Mode = iota
	// Clamp — упор в границы (слайдеры товаров и блога).
	Clamp
)

func (m Mode) String() string {
	if m == Clamp {
		return "clamp"
	}
	return "wrap"
}

// Carousel — индекс текущего слайда; Visible — сколько элементов видно одновременно.
type Carousel struct {
	Index   int
	Length  int
	Visible int
	Mode    Mode
}

// NewCarousel — Visible < 1 приводится к 1.
func NewCarousel(length, visible int, mode Mode) Carousel {
	if visible < 1 {
		visible = 1
	}
	if length < 0 {
		length = 0
	}
	return Carousel{Length: length, Visible: visible, Mode: mode}
}

// lastStart — последний допустимый индекс для Clamp.
func (c Carousel) lastStart() int {
	if c.Length <= c.Visible {
		return 0
	}
	return c.Length - c.Visible
}

func (c Carousel) Next() Carousel {
	if c.Length == 0 {
		return c
	}
	switch c.Mode {
	case Clamp:
		if c.Index >= c.lastStart() {
			return c
		}
		c.Index++
	default:
		if c.Index >= c.Length-1 {
			c.Index = 0
		} else {
			c.Index++
		}
	}
	return c
}

func (c Carousel) Prev() Carousel {
	if c.Length == 0 {
		return c
	}
	switch c.Mode {
	case Clamp:
		if c.Index <= 0 {
			return c
		}
		c.Index--
	default:
		if c.Index <= 0 {
			c.Index = c.Length - 1
		} else {
			c.Index--
		}
	}
	return c
}

// JumpTo — переход на i с приведением в допустимый диапазон.
func (c Carousel) JumpTo(i int) Carousel {
	hi := c.Length - 1
	if c.Mode == Clamp {
		hi = c.lastStart()
	}
	switch {
	case c.Length == 0 || i < 0:
		c.Index = 0
	case i > hi:
		c.Index = hi
	default:
		c.Index = i
	}
	return c
}

func (c Carousel) CanPrev() bool { return c.Mode == Wrap && c.Length > 1 || c.Index > 0 }

func (c Carousel) CanNext() bool {
	if c.Mode == Wrap {
		return c.Length > 1
	}
	return c.Index < c.lastStart()
}

// Window — индексы видимых элементов, начиная с Index (для Wrap — по кругу).
func (c Carousel) Window() []int {
	n := c.Visible
	if n > c.Length {
		n = c.Length
	}
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		i := c.Index + k
		if c.Mode == Wrap {
			i %= c.Length
		} else if i >= c.Length {
			break
		}
		out = append(out, i)
	}
	return out
}

// FromQuery — состояние из ?slide=n&dir=next|prev (no-JS кнопки).
func (c Carousel) FromQuery(q url.Values) Carousel {
	if raw := q.Get("slide"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			c = c.JumpTo(n)
		}
	}
	switch q.Get("dir") {
	case "next":
		c = c.Next()
	case "prev":
		c = c.Prev()
	}
	return c
}

// NextQuery / PrevQuery — query-строки no-JS кнопок от текущего состояния.
func (c Carousel) NextQuery() string { return slideQuery(c.Next().Index) }

func (c Carousel) PrevQuery() string { return slideQuery(c.Prev().Index) }

func slideQuery(i int) string {
	return "slide=" + strconv.Itoa(i)
}
