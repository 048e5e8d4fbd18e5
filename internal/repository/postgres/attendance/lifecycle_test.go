package attendance

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/entity"
	"daycare/backend/internal/repository/postgres"
)

func strPtr(s string) *string { return &s }

func webStatus(t *testing.T, err error) int {
	t.Helper()
	var webErr *web.Error
	if !errors.As(err, &webErr) {
		t.Fatalf("expected *web.Error, got %T: %v", err, err)
	}
	return webErr.Status
}

func TestApplyCheckIn(t *testing.T) {
	record := entity.AttendanceRecord{Date: "2025-09-19"}

	if err := applyCheckIn(&record, "08:30:00", 7, strPtr("arrived happy")); err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if record.CheckInTime == nil || *record.CheckInTime != "08:30:00" {
		t.Fatalf("check-in time not recorded: %+v", record)
	}
	if record.Status == nil || *record.Status != entity.StatusPresent {
		t.Fatalf("status not derived to present: %+v", record)
	}
	if record.CheckInBy == nil || *record.CheckInBy != 7 {
		t.Fatalf("check-in user not recorded: %+v", record)
	}
	if record.CheckInNotes == nil || *record.CheckInNotes != "arrived happy" {
		t.Fatalf("check-in notes not recorded: %+v", record)
	}

	// A second check-in must fail rather than overwrite the first.
	err := applyCheckIn(&record, "09:00:00", 7, nil)
	if err == nil {
		t.Fatal("second check-in succeeded")
	}
	if !errors.Is(err, postgres.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if status := webStatus(t, err); status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if *record.CheckInTime != "08:30:00" {
		t.Fatalf("check-in time overwritten to %q", *record.CheckInTime)
	}
}

func TestApplyCheckOut(t *testing.T) {
	record := entity.AttendanceRecord{Date: "2025-09-19"}

	// Check-out before any check-in is a not-found condition.
	err := applyCheckOut(&record, "16:30:00", 7, nil)
	if !errors.Is(err, postgres.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if status := webStatus(t, err); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}

	if err := applyCheckIn(&record, "08:30:00", 7, nil); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if err := applyCheckOut(&record, "16:30:00", 9, strPtr("good day")); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if record.CheckOutTime == nil || *record.CheckOutTime != "16:30:00" {
		t.Fatalf("check-out time not recorded: %+v", record)
	}
	if record.CheckOutBy == nil || *record.CheckOutBy != 9 {
		t.Fatalf("check-out user not recorded: %+v", record)
	}

	err = applyCheckOut(&record, "17:00:00", 9, nil)
	if !errors.Is(err, postgres.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on repeat, got %v", err)
	}
	if status := webStatus(t, err); status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if *record.CheckOutTime != "16:30:00" {
		t.Fatalf("check-out time overwritten to %q", *record.CheckOutTime)
	}
}

func TestDeriveStatus(t *testing.T) {
	if got := deriveStatus(nil); got != entity.StatusAbsent {
		t.Fatalf("deriveStatus(nil) = %q", got)
	}
	if got := deriveStatus(strPtr("08:30:00")); got != entity.StatusPresent {
		t.Fatalf("deriveStatus(time) = %q", got)
	}
}
