package display

// NamedItem is anything with a display name (artists, albums, list rows)
type NamedItem interface {
	GetName() string
}

// ImageRef is anything pointing at an image
type ImageRef interface {
	GetURL() string
}

// IndexedModel is a count + indexed getter container, the shape UI list
// models expose instead of a plain slice.
type IndexedModel[T any] interface {
	Count() int
	Get(i int) T
}

// Collection is either a Sequence or a Model. A nil Collection means the
// input is absent.
type Collection[T any] interface {
	Len() int
	Each(fn func(i int, item T))

	collection()
}

// Sequence is an ordered slice of items
type Sequence[T any] []T

// Len returns the number of items
func (s Sequence[T]) Len() int {
	return len(s)
}

// Each calls fn for every item in order
func (s Sequence[T]) Each(fn func(i int, item T)) {
	for i, item := range s {
		fn(i, item)
	}
}

func (Sequence[T]) collection() {}

// Model adapts an IndexedModel into a Collection
type Model[T any] struct {
	M IndexedModel[T]
}

// FromModel wraps an indexed model
func FromModel[T any](m IndexedModel[T]) Model[T] {
	return Model[T]{M: m}
}

// Len returns the model count, 0 for a nil model
func (m Model[T]) Len() int {
	if m.M == nil {
		return 0
	}
	return m.M.Count()
}

// Each calls fn for indices 0..Count()-1
func (m Model[T]) Each(fn func(i int, item T)) {
	n := m.Len()
	for i := 0; i < n; i++ {
		fn(i, m.M.Get(i))
	}
}

func (Model[T]) collection() {}
