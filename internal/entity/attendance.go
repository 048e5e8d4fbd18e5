package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// AttendanceRecord is one check-in/check-out pair for a child on a calendar
// day. Soft delete goes through is_active, not deleted_at: inactive rows are
// invisible to every query and free the (child_id, attendance_date) pair.
type AttendanceRecord struct {
	bun.BaseModel `bun:"table:attendance"`

	ID            int        `json:"id" bun:"id,pk,autoincrement"`
	ChildID       *int       `json:"child_id" bun:"child_id"`
	Date          string     `json:"date" bun:"attendance_date"`
	CheckInTime   *string    `json:"check_in_time" bun:"check_in_time"`
	CheckOutTime  *string    `json:"check_out_time" bun:"check_out_time"`
	Status        *string    `json:"status" bun:"status"`
	CheckInNotes  *string    `json:"check_in_notes" bun:"check_in_notes"`
	CheckOutNotes *string    `json:"check_out_notes" bun:"check_out_notes"`
	IsActive      bool       `json:"is_active" bun:"is_active"`
	CenterID      *int       `json:"center_id" bun:"center_id"`
	CheckInBy     *int       `json:"check_in_by" bun:"check_in_by"`
	CheckOutBy    *int       `json:"check_out_by" bun:"check_out_by"`
	CreatedAt     time.Time  `json:"created_at" bun:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at" bun:"updated_at"`
}

// Attendance statuses. The column is a cached value derived from
// check_in_time presence and is recomputed on every write.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)
