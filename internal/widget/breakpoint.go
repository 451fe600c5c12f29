package widget

import "sort"

// Breakpoint — ширина вьюпорта (строго меньше MaxWidth) → число видимых элементов.
type Breakpoint struct {
	MaxWidth int
	Visible  int
}

// BreakpointTable — упорядоченная по MaxWidth таблица; Default — для ширин за последней границей.
type BreakpointTable struct {
	Steps   []Breakpoint
	Default int
}

var (
	ProductSlider = BreakpointTable{
		Steps:   []Breakpoint{{640, 1}, {1024, 2}, {1280, 3}},
		Default: 4,
	}
	BlogSlider = BreakpointTable{
		Steps:   []Breakpoint{{640, 1}, {1024, 2}},
		Default: 3,
	}
	VideoSlider = BreakpointTable{
		Steps:   []Breakpoint{{768, 1}},
		Default: 2,
	}
)

// BreakpointFor — чистая функция width → visibleItems.
func BreakpointFor(width int, table BreakpointTable) int {
	steps := append([]Breakpoint(nil), table.Steps...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].MaxWidth < steps[j].MaxWidth })
	for _, s := range steps {
		if width < s.MaxWidth {
			return max(s.Visible, 1)
		}
	}
	return max(table.Default, 1)
}

// Max — число видимых элементов на самом широком экране (серверный рендер без ширины).
func (t BreakpointTable) Max() int {
	m := max(t.Default, 1)
	for _, s := range t.Steps {
		m = max(m, s.Visible)
	}
	return m
}
