package child

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/repository/postgres/child"
	"daycare/backend/internal/service"
)

type Controller struct {
	child Child
}

func NewController(child Child) *Controller {
	return &Controller{child}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter child.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if classroomId, ok := c.GetQueryFunc(reflect.Int, "classroom_id").(*int); ok {
		filter.ClassroomID = classroomId
	}
	if centerId, ok := c.GetQueryFunc(reflect.Int, "center_id").(*int); ok {
		filter.CenterID = centerId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.child.GetList(c.Ctx, filter)
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

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.child.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request child.CreateRequest
	if err := c.BindFunc(&request, "FirstName", "LastName"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.child.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request child.UpdateRequest
	if err := c.BindFunc(&request, "FirstName", "LastName"); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.child.UpdateAll(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request child.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.child.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.child.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetBadge(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.child.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	filePath, err := service.GenerateBadgePNG(service.ChildBadge{
		ChildID:  detail.ID,
		FullName: fullName(detail.FirstName, detail.LastName),
	})
	if err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename="+filepath.Base(filePath))
	c.Status(http.StatusOK)

	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}

func (uc Controller) GetBadgeSheet(c *web.Context) error {
	var filter child.Filter
	if classroomId, ok := c.GetQueryFunc(reflect.Int, "classroom_id").(*int); ok {
		filter.ClassroomID = classroomId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, _, err := uc.child.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	badges := make([]service.ChildBadge, 0, len(list))
	for _, item := range list {
		badge := service.ChildBadge{
			ChildID:  item.ID,
			FullName: fullName(item.FirstName, item.LastName),
		}
		if item.Classroom != nil {
			badge.Classroom = *item.Classroom
		}
		badges = append(badges, badge)
	}

	pdfPath, err := service.GenerateBadgeSheet(badges)
	if err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(pdfPath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"badges.pdf\"")
	c.Status(http.StatusOK)

	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}

func fullName(first, last *string) string {
	var parts []string
	if first != nil {
		parts = append(parts, *first)
	}
	if last != nil {
		parts = append(parts, *last)
	}
	if len(parts) == 0 {
		return "child"
	}
	return strings.Join(parts, " ")
}
