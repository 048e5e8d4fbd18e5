package attendance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/entity"
	"daycare/backend/internal/repository/postgres/attendance"
)

type fakeAttendance struct {
	checkInErr  error
	checkOutErr error
	getByIdErr  error
	record      entity.AttendanceRecord
}

func (f *fakeAttendance) GetById(ctx context.Context, id int) (entity.AttendanceRecord, error) {
	if f.getByIdErr != nil {
		return entity.AttendanceRecord{}, f.getByIdErr
	}
	return f.record, nil
}

func (f *fakeAttendance) GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error) {
	return nil, 0, nil
}

func (f *fakeAttendance) Create(ctx context.Context, request attendance.CreateRequest) (entity.AttendanceRecord, error) {
	return f.record, nil
}

func (f *fakeAttendance) CheckIn(ctx context.Context, request attendance.CheckInRequest) (entity.AttendanceRecord, error) {
	if f.checkInErr != nil {
		return entity.AttendanceRecord{}, f.checkInErr
	}
	return f.record, nil
}

func (f *fakeAttendance) CheckOut(ctx context.Context, request attendance.CheckOutRequest) (entity.AttendanceRecord, error) {
	if f.checkOutErr != nil {
		return entity.AttendanceRecord{}, f.checkOutErr
	}
	return f.record, nil
}

func (f *fakeAttendance) UpdateColumns(ctx context.Context, request attendance.UpdateRequest) (entity.AttendanceRecord, error) {
	return f.record, nil
}

func (f *fakeAttendance) Delete(ctx context.Context, id int) error { return nil }

func (f *fakeAttendance) DailyReport(ctx context.Context, reportDate string, classroomID *int) (attendance.DailyReportResponse, error) {
	return attendance.DailyReportResponse{}, nil
}

func (f *fakeAttendance) WeeklyReport(ctx context.Context, startDate, endDate string, classroomID *int) (attendance.WeeklyReportResponse, error) {
	return attendance.WeeklyReportResponse{}, nil
}

func (f *fakeAttendance) ChildReport(ctx context.Context, childID int, startDate, endDate string) (attendance.ChildReportResponse, error) {
	return attendance.ChildReportResponse{}, nil
}

func (f *fakeAttendance) DailyStats(ctx context.Context, statsDate string) (attendance.StatsResponse, error) {
	return attendance.StatsResponse{}, nil
}

func newTestApp(fake *fakeAttendance) *web.App {
	gin.SetMode(gin.TestMode)
	app := web.NewApp()
	controller := NewController(fake)

	app.Get("/attendance/:id", controller.GetById)
	app.Post("/attendance/check-in", controller.CheckIn)
	app.Post("/attendance/check-out", controller.CheckOut)
	return app
}

func doJSON(t *testing.T, app *web.App, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestCheckInSuccess(t *testing.T) {
	childID := 4
	checkIn := "08:30:00"
	fake := &fakeAttendance{record: entity.AttendanceRecord{
		ID:          1,
		ChildID:     &childID,
		Date:        "2026-03-02",
		CheckInTime: &checkIn,
	}}
	app := newTestApp(fake)

	rec := doJSON(t, app, http.MethodPost, "/attendance/check-in", map[string]interface{}{
		"child_id": 4,
		"date":     "2026-03-02",
		"check_in": "08:30",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !body.Status || body.Data.ID != 1 {
		t.Errorf("unexpected response: %s", rec.Body.String())
	}
}

func TestCheckInMissingChild(t *testing.T) {
	app := newTestApp(&fakeAttendance{})

	rec := doJSON(t, app, http.MethodPost, "/attendance/check-in", map[string]interface{}{
		"date": "2026-03-02",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCheckInConflict(t *testing.T) {
	fake := &fakeAttendance{
		checkInErr: &web.Error{Err: errors.New("child already checked in on this date"), Status: http.StatusConflict},
	}
	app := newTestApp(fake)

	rec := doJSON(t, app, http.MethodPost, "/attendance/check-in", map[string]interface{}{
		"child_id": 4,
		"date":     "2026-03-02",
		"check_in": "08:30",
	})

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Status bool `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Status {
		t.Errorf("expected status false, got: %s", rec.Body.String())
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	fake := &fakeAttendance{
		checkOutErr: &web.Error{Err: errors.New("no check-in found for this child on this date"), Status: http.StatusNotFound},
	}
	app := newTestApp(fake)

	rec := doJSON(t, app, http.MethodPost, "/attendance/check-out", map[string]interface{}{
		"child_id":  4,
		"date":      "2026-03-02",
		"check_out": "16:30",
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetByIdBadParam(t *testing.T) {
	app := newTestApp(&fakeAttendance{})

	rec := doJSON(t, app, http.MethodGet, "/attendance/abc", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
