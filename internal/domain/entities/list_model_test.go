package entities_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuongmanhnghia/sailfmt/internal/display"
	"github.com/vuongmanhnghia/sailfmt/internal/domain/entities"
)

func newTestModel(t *testing.T) (*entities.ListModel, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	return entities.NewListModel(log), buf
}

func TestListModelSetValues(t *testing.T) {
	model, _ := newTestModel(t)

	model.SetValues(`[{"name":"X","url":"x.jpg"},{"name":"Y"}]`)

	require.Equal(t, 2, model.Count())
	assert.Equal(t, "X", model.Get(0).GetName())
	assert.Equal(t, "x.jpg", model.Get(0).GetURL())
	assert.Equal(t, "Y", model.Get(1).GetName())
	assert.Equal(t, "", model.Get(1).GetURL())
	assert.JSONEq(t, `[{"name":"X","url":"x.jpg"},{"name":"Y"}]`, model.Values())
}

func TestListModelInvalidJSON(t *testing.T) {
	model, logs := newTestModel(t)
	model.Add(`{"name":"keep"}`)

	model.SetValues(`[{"name":`)

	assert.Equal(t, 0, model.Count())
	assert.Contains(t, logs.String(), "Invalid json")
	assert.Equal(t, "[]", model.Values())
}

func TestListModelNonObjectElements(t *testing.T) {
	model, logs := newTestModel(t)

	model.SetValues(`[{"name":"A"}, 42, "text"]`)

	require.Equal(t, 3, model.Count())
	assert.Equal(t, "A", model.Get(0).GetName())
	assert.Empty(t, model.Get(1))
	assert.Contains(t, logs.String(), "Is not a JSON object")

	model.SetValues(`{"name":"not an array"}`)
	assert.Equal(t, 0, model.Count())
	assert.Contains(t, logs.String(), "Is not a JSON array")
}

func TestListModelMutations(t *testing.T) {
	model, _ := newTestModel(t)

	model.Add(`{"name":"B"}`)
	model.Insert(0, `{"name":"A"}`)
	model.Insert(99, `{"name":"D"}`)
	model.Insert(2, `{"name":"C"}`)
	model.Extend(`[{"name":"E"},{"name":"F"}]`)

	assert.Equal(t, "A, B, C, D, E, F", display.JoinNames[entities.Row](display.FromModel[entities.Row](model)))

	model.Remove(0)
	model.Remove(-1)
	model.Remove(42)
	assert.Equal(t, "B, C, D, E, F", display.JoinNames[entities.Row](display.FromModel[entities.Row](model)))

	model.Add(`not json`)
	assert.Equal(t, 6, model.Count())
	assert.Equal(t, "", model.Get(5).GetName())

	model.Extend(`garbage`)
	assert.Equal(t, 6, model.Count())

	model.Clear()
	assert.Equal(t, 0, model.Count())
	assert.Equal(t, "", display.JoinNames[entities.Row](display.FromModel[entities.Row](model)))
}

func TestListModelGetOutOfRange(t *testing.T) {
	model, _ := newTestModel(t)

	assert.Empty(t, model.Get(0))
	assert.Empty(t, model.Get(-1))
}

func TestListModelGetReturnsCopy(t *testing.T) {
	model, _ := newTestModel(t)
	model.Add(`{"name":"A"}`)

	row := model.Get(0)
	row["name"] = "changed"

	assert.Equal(t, "A", model.Get(0).GetName())
}

func TestListModelData(t *testing.T) {
	model, _ := newTestModel(t)
	model.SetProperties([]string{"name", "duration_ms"})
	model.SetValues(`[{"name":"A","duration_ms":65000,"uri":"spotify:track:1"}]`)

	assert.Equal(t, "A", model.Data(0, "name"))
	assert.Equal(t, float64(65000), model.Data(0, "duration_ms"))
	assert.Nil(t, model.Data(0, "uri"))
	assert.Nil(t, model.Data(1, "name"))

	whole, ok := model.Data(0, entities.ModelDataRole).(entities.Row)
	require.True(t, ok)
	assert.Equal(t, "spotify:track:1", whole.Field("uri"))

	assert.Equal(t, []string{"name", "duration_ms"}, model.Properties())
}

func TestListModelChooseImage(t *testing.T) {
	model, _ := newTestModel(t)
	model.SetValues(`[{"url":"z","width":300}]`)

	assert.Equal(t, "z", display.ChooseImage[entities.Row](display.FromModel[entities.Row](model), 300))
}

func TestRowFieldScalars(t *testing.T) {
	model, _ := newTestModel(t)
	model.SetValues(`[{"name":5,"url":"z"},{"name":"Y"},{"name":2.5},{"name":true},{"name":null},{"name":{"a":1}}]`)

	tests := []struct {
		index    int
		expected string
	}{
		{0, "5"},
		{1, "Y"},
		{2, "2.5"},
		{3, "true"},
		{4, ""},
		{5, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Get(tt.index).GetName())
		})
	}

	model.SetValues(`[{"name":5,"url":"z"},{"name":"Y"}]`)
	assert.Equal(t, "5, Y", display.JoinNames[entities.Row](display.FromModel[entities.Row](model)))
}
