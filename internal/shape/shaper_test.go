package shape

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productRecord struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

func (p productRecord) ShapeID() (string, any) {
	return "id", p.ID
}

func (p productRecord) ShapeFields() map[string]any {
	return map[string]any{
		"name":  p.Name,
		"price": p.Price,
	}
}

func TestShape_EmptyFieldListReturnsEverything(t *testing.T) {
	records := []productRecord{
		{ID: uuid.New(), Name: "lamp", Price: 15},
		{ID: uuid.New(), Name: "desk", Price: 120},
	}

	shaped := Shape(records, "")

	require.Len(t, shaped, 2)
	for i, record := range shaped {
		assert.Equal(t, records[i].ID, record["id"])
		assert.Equal(t, records[i].Name, record["name"])
		assert.Equal(t, records[i].Price, record["price"])
	}
}

func TestShape_SelectedFieldsKeepIdentity(t *testing.T) {
	records := []productRecord{{ID: uuid.New(), Name: "lamp", Price: 15}}

	shaped := Shape(records, "name")

	require.Len(t, shaped, 1)
	assert.Len(t, shaped[0], 2)
	assert.Equal(t, records[0].ID, shaped[0]["id"])
	assert.Equal(t, "lamp", shaped[0]["name"])
	assert.NotContains(t, shaped[0], "price")
}

func TestShape_FieldNamesAreTrimmedAndCaseInsensitive(t *testing.T) {
	records := []productRecord{{ID: uuid.New(), Name: "lamp", Price: 15}}

	shaped := Shape(records, " NAME , Price ")

	require.Len(t, shaped, 1)
	assert.Equal(t, "lamp", shaped[0]["name"])
	assert.Equal(t, 15.0, shaped[0]["price"])
}

func TestShape_UnknownFieldsIgnored(t *testing.T) {
	records := []productRecord{{ID: uuid.New(), Name: "lamp", Price: 15}}

	shaped := Shape(records, "name,weight,color")

	require.Len(t, shaped, 1)
	assert.Len(t, shaped[0], 2)
	assert.Equal(t, "lamp", shaped[0]["name"])
}

func TestShape_Idempotent(t *testing.T) {
	records := []productRecord{
		{ID: uuid.New(), Name: "lamp", Price: 15},
		{ID: uuid.New(), Name: "desk", Price: 120},
	}

	first := Shape(records, "price")
	second := Shape(records, "price")

	assert.Equal(t, first, second)
}

func TestShape_EmptyInput(t *testing.T) {
	shaped := Shape([]productRecord{}, "name")

	assert.NotNil(t, shaped)
	assert.Empty(t, shaped)
}

func TestOne(t *testing.T) {
	record := productRecord{ID: uuid.New(), Name: "lamp", Price: 15}

	shaped := One(record, "price")

	assert.Len(t, shaped, 2)
	assert.Equal(t, record.ID, shaped["id"])
	assert.Equal(t, 15.0, shaped["price"])
}
