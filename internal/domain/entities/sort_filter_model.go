package entities

import (
	"cmp"
	"slices"
)

// SortFilterModel is a filtered and sorted view over a ListModel.
//
// A row is kept when no filter role is set or when its filter role value,
// read as text, equals the filter value. InvertFilter keeps the other rows
// instead. Without a sort role the view keeps source order. Sorting is
// stable, so rows with equal keys stay in source order in both directions.
type SortFilterModel struct {
	source *ListModel

	filterRole    string
	filterValue   string
	invertFilter  bool
	sortRole      string
	sortAscending bool

	// source rows in view order, valid while rev matches the source
	index []int
	rev   uint64
	dirty bool
}

// NewSortFilterModel creates an unfiltered, unsorted view over source
func NewSortFilterModel(source *ListModel) *SortFilterModel {
	return &SortFilterModel{
		source:        source,
		sortAscending: true,
		dirty:         true,
	}
}

// FilterRole returns the property rows are filtered on
func (m *SortFilterModel) FilterRole() string {
	return m.filterRole
}

// FilterValue returns the value rows must carry to pass the filter
func (m *SortFilterModel) FilterValue() string {
	return m.filterValue
}

// SetFilter keeps rows whose role property equals value. An empty role
// disables filtering.
func (m *SortFilterModel) SetFilter(role, value string) {
	m.filterRole = role
	m.filterValue = value
	m.dirty = true
}

// InvertFilter reports whether matching rows are dropped instead of kept
func (m *SortFilterModel) InvertFilter() bool {
	return m.invertFilter
}

// SetInvertFilter drops matching rows instead of keeping them
func (m *SortFilterModel) SetInvertFilter(invert bool) {
	m.invertFilter = invert
	m.dirty = true
}

// SortRole returns the property rows are sorted by
func (m *SortFilterModel) SortRole() string {
	return m.sortRole
}

// SortAscending reports the sort direction
func (m *SortFilterModel) SortAscending() bool {
	return m.sortAscending
}

// SetSort orders rows by the role property. An empty role keeps source order.
func (m *SortFilterModel) SetSort(role string, ascending bool) {
	m.sortRole = role
	m.sortAscending = ascending
	m.dirty = true
}

// Count returns the number of visible rows
func (m *SortFilterModel) Count() int {
	return len(m.rows())
}

// Get returns a copy of the visible row at index, or an empty row when out of range
func (m *SortFilterModel) Get(index int) Row {
	rows := m.rows()
	if index < 0 || index >= len(rows) {
		return Row{}
	}
	return m.source.Get(rows[index])
}

// SourceIndex maps a visible row to its index in the source model, -1 when out of range
func (m *SortFilterModel) SourceIndex(index int) int {
	rows := m.rows()
	if index < 0 || index >= len(rows) {
		return -1
	}
	return rows[index]
}

func (m *SortFilterModel) rows() []int {
	if m.source == nil {
		return nil
	}
	if !m.dirty && m.rev == m.source.rev {
		return m.index
	}

	values := m.source.values
	index := make([]int, 0, len(values))
	for i, row := range values {
		if m.accepts(row) {
			index = append(index, i)
		}
	}

	if m.sortRole != "" {
		slices.SortStableFunc(index, func(a, b int) int {
			c := compareValues(values[a][m.sortRole], values[b][m.sortRole])
			if !m.sortAscending {
				return -c
			}
			return c
		})
	}

	m.index = index
	m.rev = m.source.rev
	m.dirty = false
	return index
}

func (m *SortFilterModel) accepts(row Row) bool {
	if m.filterRole == "" {
		return true
	}
	return (row.Field(m.filterRole) == m.filterValue) != m.invertFilter
}

// compareValues orders decoded JSON values. Missing values sort first,
// numbers compare numerically, strings lexically, and mixed kinds by
// their text.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return cmp.Compare(boolRank(av), boolRank(bv))
		}
	}
	return cmp.Compare(formatValue(a), formatValue(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
