package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/entity"
	"daycare/backend/internal/pkg/repository/postgresql"
	"daycare/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.AttendanceRecord, error) {
	var detail entity.AttendanceRecord

	err := r.NewSelect().Model(&detail).Where("id = ? AND is_active", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.AttendanceRecord{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "selecting attendance record"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := "WHERE a.is_active"

	if filter.Date != nil {
		day, err := date.ParseDate(*filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND a.attendance_date = '%s'", day.Format("2006-01-02"))
	}
	if filter.ChildID != nil {
		whereQuery += fmt.Sprintf(" AND a.child_id = %d", *filter.ChildID)
	}
	if filter.ClassroomID != nil {
		whereQuery += fmt.Sprintf(" AND c.classroom_id = %d", *filter.ClassroomID)
	}

	orderQuery := "ORDER BY a.attendance_date DESC, a.check_in_time ASC"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	list, err := r.selectRecords(ctx, whereQuery, orderQuery+limitQuery+offsetQuery)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM attendance a
		LEFT JOIN children c ON a.child_id = c.id
		%s
	`, whereQuery)

	count := 0
	if err := r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.AttendanceRecord, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}

	if err := r.ValidateStruct(&request, "ChildID", "Date"); err != nil {
		return entity.AttendanceRecord{}, err
	}

	day, err := date.ParseDate(request.Date)
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
	}

	// Application-level pre-check. The partial unique index on
	// (child_id, attendance_date) WHERE is_active stays the source of truth
	// for racing writers; see the insert below.
	exists, err := r.activeRecordExists(ctx, *request.ChildID, day.Format("2006-01-02"))
	if err != nil {
		return entity.AttendanceRecord{}, err
	}
	if exists {
		return entity.AttendanceRecord{}, web.NewRequestError(
			errors.Wrap(postgres.ErrAlreadyExists, "attendance record already exists for this child on this date"),
			http.StatusConflict,
		)
	}

	record := entity.AttendanceRecord{
		ChildID:   request.ChildID,
		Date:      day.Format("2006-01-02"),
		IsActive:  true,
		CenterID:  request.CenterID,
		CreatedAt: time.Now(),
	}

	if request.CheckIn != nil {
		checkIn, err := NormalizeTime(*request.CheckIn)
		if err != nil {
			return entity.AttendanceRecord{}, err
		}
		record.CheckInTime = &checkIn
		record.CheckInBy = &claims.UserId
	}
	if request.CheckOut != nil {
		checkOut, err := NormalizeTime(*request.CheckOut)
		if err != nil {
			return entity.AttendanceRecord{}, err
		}
		record.CheckOutTime = &checkOut
		record.CheckOutBy = &claims.UserId
	}
	if request.Notes != nil {
		record.CheckInNotes = request.Notes
	}

	status := deriveStatus(record.CheckInTime)
	record.Status = &status

	_, err = r.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID)
	if postgresql.IsUniqueViolation(err) {
		// A concurrent writer won the (child_id, attendance_date) slot.
		return entity.AttendanceRecord{}, web.NewRequestError(
			errors.Wrap(postgres.ErrAlreadyExists, "attendance record already exists for this child on this date"),
			http.StatusConflict,
		)
	}
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "creating attendance record"), http.StatusBadRequest)
	}

	return record, nil
}

func (r Repository) CheckIn(ctx context.Context, request CheckInRequest) (entity.AttendanceRecord, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}

	if err := r.ValidateStruct(&request, "ChildID", "Date", "CheckIn"); err != nil {
		return entity.AttendanceRecord{}, err
	}

	day, err := date.ParseDate(request.Date)
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
	}

	checkIn, err := NormalizeTime(request.CheckIn)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}

	record, err := r.getActiveRecord(ctx, *request.ChildID, day.Format("2006-01-02"))
	if errors.Is(err, sql.ErrNoRows) {
		// First touch of the day: the check-in creates the record.
		return r.Create(ctx, CreateRequest{
			ChildID: request.ChildID,
			Date:    request.Date,
			CheckIn: &request.CheckIn,
			Notes:   request.Notes,
		})
	}
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "selecting attendance record"), http.StatusInternalServerError)
	}

	if err := applyCheckIn(&record, checkIn, claims.UserId, request.Notes); err != nil {
		return entity.AttendanceRecord{}, err
	}

	if err := r.persistCheckIn(ctx, &record); err != nil {
		return entity.AttendanceRecord{}, err
	}

	return record, nil
}

func (r Repository) CheckOut(ctx context.Context, request CheckOutRequest) (entity.AttendanceRecord, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}

	if err := r.ValidateStruct(&request, "ChildID", "Date", "CheckOut"); err != nil {
		return entity.AttendanceRecord{}, err
	}

	day, err := date.ParseDate(request.Date)
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
	}

	checkOut, err := NormalizeTime(request.CheckOut)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}

	record, err := r.getActiveRecord(ctx, *request.ChildID, day.Format("2006-01-02"))
	if errors.Is(err, sql.ErrNoRows) {
		return entity.AttendanceRecord{}, web.NewRequestError(
			errors.Wrap(postgres.ErrNotFound, "no check-in found for this child on this date"),
			http.StatusNotFound,
		)
	}
	if err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "selecting attendance record"), http.StatusInternalServerError)
	}

	if err := applyCheckOut(&record, checkOut, claims.UserId, request.Notes); err != nil {
		return entity.AttendanceRecord{}, err
	}

	now := time.Now()
	record.UpdatedAt = &now

	q := r.NewUpdate().Table("attendance").Where("is_active AND id = ?", record.ID)
	q.Set("check_out_time = ?", record.CheckOutTime)
	q.Set("check_out_by = ?", record.CheckOutBy)
	q.Set("check_out_notes = ?", record.CheckOutNotes)
	q.Set("updated_at = ?", record.UpdatedAt)

	if _, err := q.Exec(ctx); err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "updating attendance record"), http.StatusBadRequest)
	}

	return record, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) (entity.AttendanceRecord, error) {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return entity.AttendanceRecord{}, err
	}

	if _, err := r.CheckClaims(ctx); err != nil {
		return entity.AttendanceRecord{}, err
	}

	record, err := r.GetById(ctx, request.ID)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}

	if request.CheckIn != nil {
		checkIn, err := NormalizeTime(*request.CheckIn)
		if err != nil {
			return entity.AttendanceRecord{}, err
		}
		status := entity.StatusPresent
		record.CheckInTime = &checkIn
		record.Status = &status
	}
	if request.CheckOut != nil {
		checkOut, err := NormalizeTime(*request.CheckOut)
		if err != nil {
			return entity.AttendanceRecord{}, err
		}
		record.CheckOutTime = &checkOut
	}
	if request.CheckInNotes != nil {
		record.CheckInNotes = request.CheckInNotes
	}
	if request.CheckOutNotes != nil {
		record.CheckOutNotes = request.CheckOutNotes
	}

	now := time.Now()
	record.UpdatedAt = &now

	q := r.NewUpdate().Table("attendance").Where("is_active AND id = ?", record.ID)
	q.Set("check_in_time = ?", record.CheckInTime)
	q.Set("check_out_time = ?", record.CheckOutTime)
	q.Set("status = ?", record.Status)
	q.Set("check_in_notes = ?", record.CheckInNotes)
	q.Set("check_out_notes = ?", record.CheckOutNotes)
	q.Set("updated_at = ?", record.UpdatedAt)

	if _, err := q.Exec(ctx); err != nil {
		return entity.AttendanceRecord{}, web.NewRequestError(errors.Wrap(err, "updating attendance record"), http.StatusBadRequest)
	}

	return record, nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx); err != nil {
		return err
	}

	result, err := r.NewUpdate().
		Table("attendance").
		Where("is_active AND id = ?", id).
		Set("is_active = false").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "deleting attendance record"), http.StatusBadRequest)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking affected rows"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) DailyReport(ctx context.Context, reportDate string, classroomID *int) (DailyReportResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return DailyReportResponse{}, err
	}

	day, err := date.ParseDate(reportDate)
	if err != nil {
		return DailyReportResponse{}, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
	}

	whereQuery := fmt.Sprintf("WHERE a.is_active AND a.attendance_date = '%s'", day.Format("2006-01-02"))
	if classroomID != nil {
		whereQuery += fmt.Sprintf(" AND c.classroom_id = %d", *classroomID)
	}

	records, err := r.selectRecords(ctx, whereQuery, "ORDER BY a.check_in_time ASC")
	if err != nil {
		return DailyReportResponse{}, err
	}

	return DailyReportResponse{
		Stats:   buildDailyStats(day.Format("2006-01-02"), records),
		Records: records,
	}, nil
}

func (r Repository) WeeklyReport(ctx context.Context, startDate, endDate string, classroomID *int) (WeeklyReportResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return WeeklyReportResponse{}, err
	}

	start, err := date.ParseDate(startDate)
	if err != nil {
		return WeeklyReportResponse{}, web.NewRequestError(errors.Wrap(err, "start date parse"), http.StatusBadRequest)
	}
	end, err := date.ParseDate(endDate)
	if err != nil {
		return WeeklyReportResponse{}, web.NewRequestError(errors.Wrap(err, "end date parse"), http.StatusBadRequest)
	}

	whereQuery := fmt.Sprintf(
		"WHERE a.is_active AND a.attendance_date BETWEEN '%s' AND '%s'",
		start.Format("2006-01-02"), end.Format("2006-01-02"),
	)
	if classroomID != nil {
		whereQuery += fmt.Sprintf(" AND c.classroom_id = %d", *classroomID)
	}

	records, err := r.selectRecords(ctx, whereQuery, "ORDER BY a.attendance_date ASC, a.check_in_time ASC")
	if err != nil {
		return WeeklyReportResponse{}, err
	}

	totalAttendances := 0
	for _, record := range records {
		if record.CheckInTime != nil {
			totalAttendances++
		}
	}

	breakdown := buildWeeklyBreakdown(records)

	return WeeklyReportResponse{
		Period: Period{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		},
		DailyBreakdown:   breakdown,
		TotalDays:        len(breakdown),
		TotalAttendances: totalAttendances,
	}, nil
}

func (r Repository) ChildReport(ctx context.Context, childID int, startDate, endDate string) (ChildReportResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return ChildReportResponse{}, err
	}

	start, err := date.ParseDate(startDate)
	if err != nil {
		return ChildReportResponse{}, web.NewRequestError(errors.Wrap(err, "start date parse"), http.StatusBadRequest)
	}
	end, err := date.ParseDate(endDate)
	if err != nil {
		return ChildReportResponse{}, web.NewRequestError(errors.Wrap(err, "end date parse"), http.StatusBadRequest)
	}

	whereQuery := fmt.Sprintf(
		"WHERE a.is_active AND a.child_id = %d AND a.attendance_date BETWEEN '%s' AND '%s'",
		childID, start.Format("2006-01-02"), end.Format("2006-01-02"),
	)

	records, err := r.selectRecords(ctx, whereQuery, "ORDER BY a.attendance_date ASC")
	if err != nil {
		return ChildReportResponse{}, err
	}

	period := Period{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	return buildChildSummary(childID, period, records), nil
}

func (r Repository) DailyStats(ctx context.Context, statsDate string) (StatsResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	day, err := date.ParseDate(statsDate)
	if err != nil {
		return StatsResponse{}, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
	}

	whereQuery := fmt.Sprintf("WHERE a.is_active AND a.attendance_date = '%s'", day.Format("2006-01-02"))

	records, err := r.selectRecords(ctx, whereQuery, "ORDER BY a.check_in_time ASC")
	if err != nil {
		return StatsResponse{}, err
	}

	return buildDailyCounts(day.Format("2006-01-02"), records), nil
}

// getActiveRecord loads the single active record for a child and date.
// Returns sql.ErrNoRows untouched so callers can branch on it.
func (r Repository) getActiveRecord(ctx context.Context, childID int, day string) (entity.AttendanceRecord, error) {
	var record entity.AttendanceRecord

	err := r.NewSelect().
		Model(&record).
		Where("child_id = ? AND attendance_date = ? AND is_active", childID, day).
		Scan(ctx)

	return record, err
}

func (r Repository) activeRecordExists(ctx context.Context, childID int, day string) (bool, error) {
	exists := false
	query := fmt.Sprintf(`
		SELECT CASE WHEN
			(SELECT id FROM attendance WHERE child_id = %d AND attendance_date = '%s' AND is_active LIMIT 1) IS NOT NULL
		THEN true ELSE false END`, childID, day)

	if err := r.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "attendance record check"), http.StatusInternalServerError)
	}

	return exists, nil
}

func (r Repository) persistCheckIn(ctx context.Context, record *entity.AttendanceRecord) error {
	now := time.Now()
	record.UpdatedAt = &now

	q := r.NewUpdate().Table("attendance").Where("is_active AND id = ?", record.ID)
	q.Set("check_in_time = ?", record.CheckInTime)
	q.Set("check_in_by = ?", record.CheckInBy)
	q.Set("check_in_notes = ?", record.CheckInNotes)
	q.Set("status = ?", record.Status)
	q.Set("updated_at = ?", record.UpdatedAt)

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance record"), http.StatusBadRequest)
	}

	return nil
}

// selectRecords runs the shared joined select and scans the display rows.
func (r Repository) selectRecords(ctx context.Context, whereQuery, orderQuery string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.child_id,
			trim(coalesce(c.first_name, '') || ' ' || coalesce(c.last_name, '')),
			c.classroom_id,
			cl.name,
			a.attendance_date,
			a.status,
			a.check_in_time,
			a.check_out_time,
			a.check_in_notes,
			a.check_out_notes
		FROM attendance a
		LEFT JOIN children c ON a.child_id = c.id
		LEFT JOIN classrooms cl ON c.classroom_id = cl.id
		%s %s
	`, whereQuery, orderQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance records"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var checkInBytes, checkOutBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&detail.ChildID,
			&detail.ChildName,
			&detail.ClassroomID,
			&detail.Classroom,
			&detail.Date,
			&detail.Status,
			&checkInBytes,
			&checkOutBytes,
			&detail.CheckInNotes,
			&detail.CheckOutNotes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}

		if checkInBytes != nil {
			checkIn := string(checkInBytes)
			detail.CheckInTime = &checkIn
		}
		if checkOutBytes != nil {
			checkOut := string(checkOutBytes)
			detail.CheckOutTime = &checkOut
		}
		detail.TotalHours = totalHours(detail.CheckInTime, detail.CheckOutTime)

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading attendance rows"), http.StatusInternalServerError)
	}

	return list, nil
}
