package attendance

import (
	"context"

	"daycare/backend/internal/entity"
	"daycare/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	GetById(ctx context.Context, id int) (entity.AttendanceRecord, error)
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	Create(ctx context.Context, request attendance.CreateRequest) (entity.AttendanceRecord, error)
	CheckIn(ctx context.Context, request attendance.CheckInRequest) (entity.AttendanceRecord, error)
	CheckOut(ctx context.Context, request attendance.CheckOutRequest) (entity.AttendanceRecord, error)
	UpdateColumns(ctx context.Context, request attendance.UpdateRequest) (entity.AttendanceRecord, error)
	Delete(ctx context.Context, id int) error

	DailyReport(ctx context.Context, reportDate string, classroomID *int) (attendance.DailyReportResponse, error)
	WeeklyReport(ctx context.Context, startDate, endDate string, classroomID *int) (attendance.WeeklyReportResponse, error)
	ChildReport(ctx context.Context, childID int, startDate, endDate string) (attendance.ChildReportResponse, error)
	DailyStats(ctx context.Context, statsDate string) (attendance.StatsResponse, error)
}
