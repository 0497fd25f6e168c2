package almanac

import (
	"fmt"
	"slices"

	"almanac-resolver/internal/common"
	"almanac-resolver/internal/match"
)

// maxSuggestions caps "did you mean" lists.
const maxSuggestions = 3

// OrderSections returns section indices ordered so that every section comes
// after the sections producing its input category. When several sections
// are ready the lowest index goes first, so unrelated sections keep their
// declared order. A category loop, including a section mapping a category
// to itself, fails with ErrBrokenChain.
func (f *File) OrderSections() ([]int, error) {
	if len(f.Sections) == 0 {
		return nil, nil
	}

	// readers[c] lists the sections consuming category c, ascending.
	readers := make(map[string][]int, len(f.Sections))
	for i := range f.Sections {
		from := f.Sections[i].From
		readers[from] = append(readers[from], i)
	}

	// pending[i] counts producers of section i's input not yet ordered.
	pending := make([]int, len(f.Sections))

	for j := range f.Sections {
		if to := f.Sections[j].To; to != "" {
			for _, i := range readers[to] {
				pending[i]++
			}
		}
	}

	var ready []int

	for i, n := range pending {
		if n == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, len(f.Sections))

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)

		to := f.Sections[i].To
		if to == "" {
			continue
		}

		for _, next := range readers[to] {
			pending[next]--
			if pending[next] == 0 {
				k, _ := slices.BinarySearch(ready, next)
				ready = slices.Insert(ready, k, next)
			}
		}
	}

	if len(order) != len(f.Sections) {
		return nil, fmt.Errorf("%w: sections map categories in a cycle", ErrBrokenChain)
	}

	return order, nil
}

// Chain returns the section indices leading from category from to category
// to. Empty names default to the first source and the last target of the
// ordered sections. from == to yields an empty chain. Every section must
// name both of its categories.
func (f *File) Chain(from, to string) ([]int, error) {
	for i := range f.Sections {
		if s := &f.Sections[i]; s.From == "" || s.To == "" {
			return nil, fmt.Errorf("%w: section %s does not name both categories", ErrBrokenChain, s.Label(i))
		}
	}

	order, err := f.OrderSections()
	if err != nil {
		return nil, err
	}

	if root, ok := common.First(order); ok && from == "" {
		from = f.Sections[root].From
	}

	if sink, ok := common.Last(order); ok && to == "" {
		to = f.Sections[sink].To
	}

	if from == "" && to == "" {
		return nil, nil
	}

	categories := f.Categories()
	for _, name := range []string{from, to} {
		if !slices.Contains(categories, name) {
			return nil, &UnknownCategoryError{
				Name:        name,
				Suggestions: match.Suggest(name, categories, maxSuggestions),
			}
		}
	}

	bySource := make(map[string][]int, len(f.Sections))
	for i := range f.Sections {
		src := f.Sections[i].From
		bySource[src] = append(bySource[src], i)
	}

	var (
		path    []int
		visited = make(map[string]bool)
	)

	for cur := from; cur != to; {
		if visited[cur] {
			return nil, fmt.Errorf("%w: category %q is revisited", ErrBrokenChain, cur)
		}

		visited[cur] = true

		next := bySource[cur]
		switch len(next) {
		case 0:
			return nil, fmt.Errorf("%w: no section maps %q on the way to %q", ErrBrokenChain, cur, to)
		case 1:
		default:
			return nil, fmt.Errorf("%w: category %q feeds %d sections", ErrBrokenChain, cur, len(next))
		}

		path = append(path, next[0])
		cur = f.Sections[next[0]].To
	}

	return path, nil
}
