// package repositories provides the persistence layer for all model types.
//
// Each repository fixes one table over the record [store.Store] and maps
// between [store.Record] rows and typed models. Repositories shape query
// parameters only; validation and cross-entity checks live in the service
// layer.
package repositories

import (
	"time"

	"github.com/desertthunder/wlx/internal/store"
)

// recordString reads a string column, treating NULL as "".
func recordString(r store.Record, col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}

// recordIntPtr reads a nullable integer column.
func recordIntPtr(r store.Record, col string) *int {
	switch v := r[col].(type) {
	case int64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	default:
		return nil
	}
}

// recordTime reads a timestamp column. The sqlite3 driver yields time.Time
// for declared TIMESTAMP columns; string values are parsed as a fallback.
func recordTime(r store.Record, col string) time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
