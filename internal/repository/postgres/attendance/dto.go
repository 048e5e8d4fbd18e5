package attendance

type Filter struct {
	Limit       *int
	Offset      *int
	Page        *int
	Date        *string
	ChildID     *int
	ClassroomID *int
}

// GetListResponse is one attendance row joined with the child and classroom
// names for display.
type GetListResponse struct {
	ID            int     `json:"id"`
	ChildID       *int    `json:"child_id"`
	ChildName     *string `json:"child_name"`
	ClassroomID   *int    `json:"classroom_id"`
	Classroom     *string `json:"classroom"`
	Date          string  `json:"date"`
	Status        *string `json:"status"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	CheckInNotes  *string `json:"check_in_notes,omitempty"`
	CheckOutNotes *string `json:"check_out_notes,omitempty"`
	TotalHours    string  `json:"total_hours"`
}

type CreateRequest struct {
	ChildID  *int    `json:"child_id" form:"child_id"`
	Date     string  `json:"date" form:"date"`
	CheckIn  *string `json:"check_in" form:"check_in"`
	CheckOut *string `json:"check_out" form:"check_out"`
	Notes    *string `json:"notes" form:"notes"`
	CenterID *int    `json:"center_id" form:"center_id"`
}

type CheckInRequest struct {
	ChildID *int    `json:"child_id" form:"child_id"`
	Date    string  `json:"date" form:"date"`
	CheckIn string  `json:"check_in" form:"check_in"`
	Notes   *string `json:"notes" form:"notes"`
}

type CheckOutRequest struct {
	ChildID  *int    `json:"child_id" form:"child_id"`
	Date     string  `json:"date" form:"date"`
	CheckOut string  `json:"check_out" form:"check_out"`
	Notes    *string `json:"notes" form:"notes"`
}

type UpdateRequest struct {
	ID            int     `json:"id" form:"id"`
	CheckIn       *string `json:"check_in" form:"check_in"`
	CheckOut      *string `json:"check_out" form:"check_out"`
	CheckInNotes  *string `json:"check_in_notes" form:"check_in_notes"`
	CheckOutNotes *string `json:"check_out_notes" form:"check_out_notes"`
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DailyStats struct {
	Date                 string  `json:"date"`
	TotalPresent         int     `json:"total_present"`
	TotalCheckedOut      int     `json:"total_checked_out"`
	StillPresent         int     `json:"still_present"`
	AverageArrivalTime   *string `json:"average_arrival_time"`
	AverageDepartureTime *string `json:"average_departure_time"`
	AttendanceRate       float64 `json:"attendance_rate"`
}

type DailyReportResponse struct {
	Stats   DailyStats        `json:"stats"`
	Records []GetListResponse `json:"records"`
}

type DayBreakdown struct {
	Date       string            `json:"date"`
	Present    int               `json:"present"`
	CheckedOut int               `json:"checked_out"`
	Records    []GetListResponse `json:"records"`
}

type WeeklyReportResponse struct {
	Period           Period         `json:"period"`
	DailyBreakdown   []DayBreakdown `json:"daily_breakdown"`
	TotalDays        int            `json:"total_days"`
	TotalAttendances int            `json:"total_attendances"`
}

type ChildReportResponse struct {
	ChildID        int               `json:"child_id"`
	Period         Period            `json:"period"`
	TotalDays      int               `json:"total_days"`
	PresentDays    int               `json:"present_days"`
	AbsentDays     int               `json:"absent_days"`
	AttendanceRate float64           `json:"attendance_rate"`
	Records        []GetListResponse `json:"records"`
}

type StatsResponse struct {
	Date         string `json:"date"`
	TotalRecords int    `json:"total_records"`
	CheckedIn    int    `json:"checked_in"`
	CheckedOut   int    `json:"checked_out"`
	StillPresent int    `json:"still_present"`
	Absent       int    `json:"absent"`
}
