package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent_Accessors(t *testing.T) {
	s := NewStudent()
	s.Set(ColumnID, int32(3))
	s.Set(ColumnName, "Amy")
	s.Set(ColumnIsSuspended, true)
	s.Set("section", nil)
	s.Set("batch", int64(2024))

	assert.Equal(t, int64(3), s.ID())
	assert.Equal(t, "Amy", s.Name())
	assert.True(t, s.IsSuspended())
	assert.Equal(t, "", s.Text("section"))
	assert.Equal(t, "2024", s.Text("batch"))
	assert.Equal(t, "", s.Text("missing"))

	_, ok := s.Get("section")
	assert.True(t, ok)
	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStudent_ZeroValue(t *testing.T) {
	var s Student
	assert.Zero(t, s.ID())
	assert.False(t, s.IsSuspended())

	s.Set(ColumnName, "Bo")
	assert.Equal(t, []string{ColumnName}, s.Columns())
}

func TestStudent_MarshalJSONKeepsColumnOrder(t *testing.T) {
	s := NewStudent()
	s.Set(ColumnID, int64(1))
	s.Set(ColumnName, "Amy")
	s.Set("rollNumber", "R-001")
	s.Set(ColumnIsSuspended, false)
	s.Set(ColumnCreatedAt, "2024-09-01T08:30:00Z")
	s.Set(ColumnUpdatedAt, nil)
	s.Set(ColumnName, "Amy B.") // overwrite keeps position

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":1,"name":"Amy B.","rollNumber":"R-001","isSuspended":false,"created_at":"2024-09-01T08:30:00Z","updated_at":null}`,
		string(data))

	// Pointers marshal the same way
	data, err = json.Marshal([]*Student{s, NewStudent()})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rollNumber":"R-001"`)
	assert.Contains(t, string(data), `{}`)
}
