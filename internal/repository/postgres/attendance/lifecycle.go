package attendance

import (
	"net/http"

	"github.com/pkg/errors"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/entity"
	"daycare/backend/internal/repository/postgres"
)

// deriveStatus recomputes the cached status column from check-in presence.
// The column is never trusted as an independent source of truth.
func deriveStatus(checkIn *string) string {
	if checkIn != nil {
		return entity.StatusPresent
	}
	return entity.StatusAbsent
}

// applyCheckIn records an arrival on an active record. A record keeps its
// first check-in: repeating the call is a conflict, not an overwrite.
func applyCheckIn(record *entity.AttendanceRecord, checkIn string, byUser int, notes *string) error {
	if record.CheckInTime != nil {
		return web.NewRequestError(
			errors.Wrap(postgres.ErrAlreadyExists, "child already has a check-in for this date"),
			http.StatusConflict,
		)
	}

	status := entity.StatusPresent
	record.CheckInTime = &checkIn
	record.Status = &status
	record.CheckInBy = &byUser
	if notes != nil {
		record.CheckInNotes = notes
	}

	return nil
}

// applyCheckOut records a departure. A check-out needs a prior check-in on
// the same record and may only happen once.
func applyCheckOut(record *entity.AttendanceRecord, checkOut string, byUser int, notes *string) error {
	if record.CheckInTime == nil {
		return web.NewRequestError(
			errors.Wrap(postgres.ErrNotFound, "no check-in found for this child on this date"),
			http.StatusNotFound,
		)
	}
	if record.CheckOutTime != nil {
		return web.NewRequestError(
			errors.Wrap(postgres.ErrAlreadyExists, "child already has a check-out for this date"),
			http.StatusConflict,
		)
	}

	record.CheckOutTime = &checkOut
	record.CheckOutBy = &byUser
	if notes != nil {
		record.CheckOutNotes = notes
	}

	return nil
}
