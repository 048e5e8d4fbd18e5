package attendance

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/pkg/errors"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/repository/postgres/attendance"
	"daycare/backend/internal/service"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter attendance.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if filterDate, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = filterDate
	}
	if childId, ok := c.GetQueryFunc(reflect.Int, "child_id").(*int); ok {
		filter.ChildID = childId
	}
	if classroomId, ok := c.GetQueryFunc(reflect.Int, "classroom_id").(*int); ok {
		filter.ClassroomID = classroomId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.attendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request attendance.CreateRequest
	if err := c.BindFunc(&request, "ChildID", "Date"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) CheckIn(c *web.Context) error {
	var request attendance.CheckInRequest
	if err := c.BindFunc(&request, "ChildID"); err != nil {
		return c.RespondError(err)
	}

	if request.Date == "" {
		request.Date = time.Now().Format("2006-01-02")
	}
	if request.CheckIn == "" {
		request.CheckIn = time.Now().Format("15:04:05")
	}

	response, err := uc.attendance.CheckIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CheckOut(c *web.Context) error {
	var request attendance.CheckOutRequest
	if err := c.BindFunc(&request, "ChildID"); err != nil {
		return c.RespondError(err)
	}

	if request.Date == "" {
		request.Date = time.Now().Format("2006-01-02")
	}
	if request.CheckOut == "" {
		request.CheckOut = time.Now().Format("15:04:05")
	}

	response, err := uc.attendance.CheckOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := uc.attendance.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.attendance.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DailyReport(c *web.Context) error {
	reportDate := time.Now().Format("2006-01-02")
	if value, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok && value != nil {
		reportDate = *value
	}

	var classroomID *int
	if value, ok := c.GetQueryFunc(reflect.Int, "classroom_id").(*int); ok {
		classroomID = value
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.DailyReport(c.Ctx, reportDate, classroomID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) WeeklyReport(c *web.Context) error {
	startDate, okStart := c.GetQueryFunc(reflect.String, "start_date").(*string)
	endDate, okEnd := c.GetQueryFunc(reflect.String, "end_date").(*string)

	var classroomID *int
	if value, ok := c.GetQueryFunc(reflect.Int, "classroom_id").(*int); ok {
		classroomID = value
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if !okStart || startDate == nil || !okEnd || endDate == nil {
		return c.RespondError(web.NewRequestError(errors.New("start_date and end_date are required"), http.StatusBadRequest))
	}

	response, err := uc.attendance.WeeklyReport(c.Ctx, *startDate, *endDate, classroomID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ChildReport(c *web.Context) error {
	childID := c.GetParam(reflect.Int, "child_id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	startDate, okStart := c.GetQueryFunc(reflect.String, "start_date").(*string)
	endDate, okEnd := c.GetQueryFunc(reflect.String, "end_date").(*string)
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if !okStart || startDate == nil || !okEnd || endDate == nil {
		return c.RespondError(web.NewRequestError(errors.New("start_date and end_date are required"), http.StatusBadRequest))
	}

	response, err := uc.attendance.ChildReport(c.Ctx, childID, *startDate, *endDate)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DailyStats(c *web.Context) error {
	statsDate := time.Now().Format("2006-01-02")
	if value, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok && value != nil {
		statsDate = *value
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.DailyStats(c.Ctx, statsDate)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportExcel(c *web.Context) error {
	var filter attendance.Filter
	if filterDate, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = filterDate
	}
	if classroomId, ok := c.GetQueryFunc(reflect.Int, "classroom_id").(*int); ok {
		filter.ClassroomID = classroomId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, _, err := uc.attendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	rows := make([]service.AttendanceRow, 0, len(list))
	for _, item := range list {
		row := service.AttendanceRow{
			Date:       item.Date,
			TotalHours: item.TotalHours,
		}
		if item.Status != nil {
			row.Status = *item.Status
		}
		if item.ChildName != nil {
			row.ChildName = *item.ChildName
		}
		if item.Classroom != nil {
			row.Classroom = *item.Classroom
		}
		if item.CheckInTime != nil {
			row.CheckInTime = *item.CheckInTime
		}
		if item.CheckOutTime != nil {
			row.CheckOutTime = *item.CheckOutTime
		}
		rows = append(rows, row)
	}

	fileName := filepath.Join(os.TempDir(), "attendance_"+time.Now().Format("20060102150405")+".xlsx")
	if err = service.AddAttendanceToExcel(rows, fileName); err != nil {
		return c.RespondError(err)
	}
	defer os.Remove(fileName)

	file, err := os.Open(fileName)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"attendance.xlsx\"")
	c.Status(http.StatusOK)

	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}
