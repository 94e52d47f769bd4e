package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func nullableID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// percentage mirrors checklist.ComputeProgress for counts aggregated in SQL.
func percentage(total, completedRequired, required int) int {
	if total == 0 {
		return 0
	}
	if required == 0 {
		return 100
	}
	return completedRequired * 100 / required
}

func fromTimestamp(t time.Time) time.Time {
	return t.UTC()
}
