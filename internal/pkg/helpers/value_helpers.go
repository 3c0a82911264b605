package helpers

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// NormalizeValue converts a value decoded by pgx into something that
// serializes cleanly to JSON. Timestamps become ISO-8601 strings, invalid or
// NULL timestamps become nil and raw UUIDs become their canonical text form.
func NormalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return FormatTimestamp(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return FormatTimestamp(*v)
	case pgtype.Timestamp:
		if !v.Valid {
			return nil
		}
		return FormatTimestamp(v.Time)
	case pgtype.Timestamptz:
		if !v.Valid {
			return nil
		}
		return FormatTimestamp(v.Time)
	case pgtype.Date:
		if !v.Valid {
			return nil
		}
		return v.Time.Format(time.DateOnly)
	case [16]byte:
		return uuid.UUID(v).String()
	case pgtype.UUID:
		if !v.Valid {
			return nil
		}
		return uuid.UUID(v.Bytes).String()
	default:
		return value
	}
}
