package entities

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ModelDataRole returns the whole row from Data
const ModelDataRole = "modelData"

// Row is one JSON object held by a ListModel
type Row map[string]any

// GetName returns the "name" property as text
func (r Row) GetName() string {
	return r.Field("name")
}

// GetURL returns the "url" property as text
func (r Row) GetURL() string {
	return r.Field("url")
}

// Field returns a property as text. Missing and null values give "",
// numbers and booleans their JSON spelling, objects and arrays compact JSON.
func (r Row) Field(key string) string {
	return formatValue(r[key])
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// ListModel is a list of JSON objects addressed by index. Rows are fed in
// as JSON text; malformed input is logged and degrades to empty rows
// instead of failing.
type ListModel struct {
	values     []Row
	properties []string
	log        logrus.FieldLogger

	// bumped on every change to values
	rev uint64
}

// NewListModel creates an empty model. A nil log uses the logrus standard logger.
func NewListModel(log logrus.FieldLogger) *ListModel {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ListModel{
		values: make([]Row, 0),
		log:    log.WithField("component", "list_model"),
	}
}

// Count returns the number of rows
func (m *ListModel) Count() int {
	return len(m.values)
}

// Get returns a copy of the row at index, or an empty row when out of range
func (m *ListModel) Get(index int) Row {
	if index < 0 || index >= len(m.values) {
		return Row{}
	}
	return maps.Clone(m.values[index])
}

// Values serialises all rows as a JSON array
func (m *ListModel) Values() string {
	data, err := json.Marshal(m.values)
	if err != nil {
		m.log.WithError(err).Warn("Could not serialise list model")
		return "[]"
	}
	return string(data)
}

// SetValues replaces all rows with the objects of a JSON array
func (m *ListModel) SetValues(values string) {
	m.rev++
	m.values = make([]Row, 0)

	raw, ok := m.parse(values)
	if !ok {
		return
	}
	m.values = m.toRows(raw)
}

// Properties returns the property names exposed through Data
func (m *ListModel) Properties() []string {
	return slices.Clone(m.properties)
}

// SetProperties sets the property names exposed through Data
func (m *ListModel) SetProperties(properties []string) {
	m.properties = slices.Clone(properties)
}

// Data returns a single property of a row. Unknown rows or properties give
// nil; ModelDataRole gives the whole row.
func (m *ListModel) Data(index int, property string) any {
	if index < 0 || index >= len(m.values) {
		return nil
	}
	row := m.values[index]

	if property == ModelDataRole {
		return maps.Clone(row)
	}
	if !slices.Contains(m.properties, property) {
		return nil
	}
	return row[property]
}

// Add appends one JSON object
func (m *ListModel) Add(value string) {
	m.values = append(m.values, m.toRow(value))
	m.rev++
}

// Insert places one JSON object at index, clamped to the model bounds
func (m *ListModel) Insert(index int, value string) {
	index = max(0, min(index, len(m.values)))
	m.values = slices.Insert(m.values, index, m.toRow(value))
	m.rev++
}

// Extend appends all objects of a JSON array
func (m *ListModel) Extend(values string) {
	raw, ok := m.parse(values)
	if !ok {
		return
	}
	m.values = append(m.values, m.toRows(raw)...)
	m.rev++
}

// Remove deletes the row at index. Out of range indices are ignored.
func (m *ListModel) Remove(index int) {
	if index < 0 || index >= len(m.values) {
		return
	}
	m.values = slices.Delete(m.values, index, index+1)
	m.rev++
}

// Clear removes all rows
func (m *ListModel) Clear() {
	m.values = make([]Row, 0)
	m.rev++
}

// parse decodes JSON text, logging and rejecting invalid documents
func (m *ListModel) parse(text string) (any, bool) {
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		m.log.WithError(err).WithField("json", text).Warn("Invalid json")
		return nil, false
	}
	return doc, doc != nil
}

func (m *ListModel) toRow(text string) Row {
	doc, ok := m.parse(text)
	if !ok {
		return Row{}
	}
	obj, isObject := doc.(map[string]any)
	if !isObject {
		m.log.WithField("json", text).Warn("Is not a JSON object")
		return Row{}
	}
	return Row(obj)
}

func (m *ListModel) toRows(doc any) []Row {
	array, isArray := doc.([]any)
	if !isArray {
		m.log.WithField("value", doc).Warn("Is not a JSON array")
		return make([]Row, 0)
	}

	rows := make([]Row, 0, len(array))
	for _, elem := range array {
		obj, isObject := elem.(map[string]any)
		if !isObject {
			m.log.WithField("value", elem).Warn("Is not a JSON object")
			obj = map[string]any{}
		}
		rows = append(rows, Row(obj))
	}
	return rows
}
