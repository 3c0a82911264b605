package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Student is one row of the students table. Besides the well known columns
// it carries every other column of the row, keyed by column name, in the
// order the database returned them.
type Student struct {
	columns []string
	values  map[string]interface{}
}

// NewStudent creates an empty Student record.
func NewStudent() *Student {
	return &Student{values: make(map[string]interface{})}
}

// Set stores value under column, keeping first-seen column order.
func (s *Student) Set(column string, value interface{}) {
	if s.values == nil {
		s.values = make(map[string]interface{})
	}
	if _, exists := s.values[column]; !exists {
		s.columns = append(s.columns, column)
	}
	s.values[column] = value
}

// Get returns the value of column and whether the row has that column.
func (s *Student) Get(column string) (interface{}, bool) {
	value, ok := s.values[column]
	return value, ok
}

// Columns returns the column names in result-set order.
func (s *Student) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// ID returns the student identifier, or 0 when the row has none.
func (s *Student) ID() int64 {
	switch v := s.values[ColumnID].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case int16:
		return int64(v)
	default:
		return 0
	}
}

// Name returns the student's name.
func (s *Student) Name() string {
	if name, ok := s.values[ColumnName].(string); ok {
		return name
	}
	return ""
}

// IsSuspended reports the suspension flag. A missing or NULL flag counts as active.
func (s *Student) IsSuspended() bool {
	suspended, _ := s.values[ColumnIsSuspended].(bool)
	return suspended
}

// Text returns the value of column as display text, or "" when absent or NULL.
func (s *Student) Text(column string) string {
	value, ok := s.values[column]
	if !ok || value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprint(value)
}

// MarshalJSON writes the row as a JSON object preserving column order.
func (s Student) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, column := range s.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.values[column])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", column, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
