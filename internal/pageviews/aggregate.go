package pageviews

import (
	"cmp"
	"errors"
	"math"
	"slices"
)

// ErrCountOverflow возвращается, когда сумма просмотров заголовка не помещается в int64
var ErrCountOverflow = errors.New("view count overflows int64")

type TitleCount struct {
	Title string
	Count int64
}

// Aggregate суммирует просмотры по точному заголовку
type Aggregate struct {
	counts map[string]int64
}

func NewAggregate() *Aggregate {
	return &Aggregate{counts: make(map[string]int64)}
}

// Add добавляет n просмотров к заголовку. При переполнении сумма не меняется
func (a *Aggregate) Add(title string, n int64) error {
	cur := a.counts[title]
	if (n > 0 && cur > math.MaxInt64-n) || (n < 0 && cur < math.MinInt64-n) {
		return ErrCountOverflow
	}
	a.counts[title] = cur + n
	return nil
}

func (a *Aggregate) Len() int {
	return len(a.counts)
}

func (a *Aggregate) Count(title string) int64 {
	return a.counts[title]
}

// Ranked возвращает все заголовки по убыванию суммы просмотров.
// При равных суммах порядок по заголовку, чтобы не зависеть от порядка обхода мапы
func (a *Aggregate) Ranked() []TitleCount {
	ranked := make([]TitleCount, 0, len(a.counts))
	for title, count := range a.counts {
		ranked = append(ranked, TitleCount{Title: title, Count: count})
	}
	slices.SortFunc(ranked, func(x, y TitleCount) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Title, y.Title)
	})
	return ranked
}
