package timeseries

import (
	"fmt"
	"iter"
	"slices"
)

// Item is a named Series
type Item struct {
	Name   string
	Series *Series
}

// Group is a collection of named Series kept in insertion order. Replacing the series of an
// existing name keeps its position while a deleted name that is added again moves to the end.
// A Group is not safe for concurrent mutation.
type Group struct {
	keys  []string
	items map[string]*Series
}

// NewGroup returns a Group holding items in order. A repeated name keeps its first position and
// the last series given for it.
func NewGroup(items ...Item) *Group {
	g := &Group{
		keys:  make([]string, 0, len(items)),
		items: make(map[string]*Series, len(items)),
	}
	for _, item := range items {
		g.Set(item.Name, item.Series)
	}
	return g
}

// Get returns the series stored under name
func (g *Group) Get(name string) (*Series, bool) {
	s, ok := g.items[name]
	return s, ok
}

// Set stores s under name. The pointer is stored as given so Get returns the same Series.
func (g *Group) Set(name string, s *Series) {
	if _, exists := g.items[name]; !exists {
		g.keys = append(g.keys, name)
	}
	g.items[name] = s
}

// Delete removes name and reports whether it was present
func (g *Group) Delete(name string) bool {
	if _, exists := g.items[name]; !exists {
		return false
	}
	delete(g.items, name)
	g.keys = slices.DeleteFunc(g.keys, func(k string) bool { return k == name })
	return true
}

// Len returns the number of named series
func (g *Group) Len() int {
	return len(g.keys)
}

// Keys returns the names in insertion order
func (g *Group) Keys() []string {
	return slices.Clone(g.keys)
}

// Items returns the named series in insertion order
func (g *Group) Items() []Item {
	items := make([]Item, 0, len(g.keys))
	for _, k := range g.keys {
		items = append(items, Item{Name: k, Series: g.items[k]})
	}
	return items
}

// All iterates over the named series in insertion order
func (g *Group) All() iter.Seq2[string, *Series] {
	return func(yield func(string, *Series) bool) {
		for _, k := range g.keys {
			if !yield(k, g.items[k]) {
				return
			}
		}
	}
}

// Trend returns a new Group with the same names in the same order, each mapped to the trend of its
// series. The first failure is returned without a partial result.
func (g *Group) Trend(order Order) (*Group, error) {
	res := &Group{
		keys:  make([]string, 0, len(g.keys)),
		items: make(map[string]*Series, len(g.keys)),
	}
	for name, s := range g.All() {
		if s == nil {
			return nil, fmt.Errorf("series %q, %w", name, ErrNilSeries)
		}
		trend, err := s.Trend(order)
		if err != nil {
			return nil, fmt.Errorf("unable to compute trend of %q, %w", name, err)
		}
		res.Set(name, trend)
	}
	return res, nil
}
