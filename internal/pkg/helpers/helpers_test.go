package helpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("five seconds", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestNormalizeValue(t *testing.T) {
	created := time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)
	withMicros := time.Date(2024, 9, 1, 8, 30, 0, 123456000, time.UTC)
	id := uuid.MustParse("4b7e5c1e-9d4f-4a36-9c8e-0f6f1f0b2a11")

	tests := []struct {
		name  string
		value interface{}
		want  interface{}
	}{
		{"nil", nil, nil},
		{"time", created, "2024-09-01T08:30:00Z"},
		{"time with fraction", withMicros, "2024-09-01T08:30:00.123456Z"},
		{"nil time pointer", (*time.Time)(nil), nil},
		{"time pointer", &created, "2024-09-01T08:30:00Z"},
		{"valid timestamp", pgtype.Timestamp{Time: created, Valid: true}, "2024-09-01T08:30:00Z"},
		{"null timestamp", pgtype.Timestamp{}, nil},
		{"null timestamptz", pgtype.Timestamptz{}, nil},
		{"date", pgtype.Date{Time: created, Valid: true}, "2024-09-01"},
		{"raw uuid", [16]byte(id), id.String()},
		{"pgtype uuid", pgtype.UUID{Bytes: id, Valid: true}, id.String()},
		{"string passthrough", "CS-A", "CS-A"},
		{"int passthrough", int64(42), int64(42)},
		{"bool passthrough", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.value))
		})
	}
}
