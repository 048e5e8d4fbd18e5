package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type bindPayload struct {
	Name  *string `json:"name" form:"name"`
	Count *int    `json:"count" form:"count"`
}

func serve(t *testing.T, register func(app *App), method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	app := NewApp()
	register(app)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestBindFuncRequiredFields(t *testing.T) {
	rec := serve(t, func(app *App) {
		app.Post("/bind", func(c *Context) error {
			var payload bindPayload
			if err := c.BindFunc(&payload, "Name", "Count"); err != nil {
				return c.RespondError(err)
			}
			return c.Respond(map[string]interface{}{"data": payload, "status": true}, http.StatusOK)
		})
	}, http.MethodPost, "/bind", `{"name":"block a"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Status bool              `json:"status"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Status {
		t.Error("expected status false")
	}
	if _, ok := body.Fields["Count"]; !ok {
		t.Errorf("expected Count in fields, got %v", body.Fields)
	}
}

func TestGetQueryFuncMissingIsNil(t *testing.T) {
	rec := serve(t, func(app *App) {
		app.Get("/q", func(c *Context) error {
			limit, _ := c.GetQueryFunc(reflect.Int, "limit").(*int)
			if limit != nil {
				t.Errorf("expected nil limit, got %v", *limit)
			}
			search, _ := c.GetQueryFunc(reflect.String, "search").(*string)
			if search == nil || *search != "anna" {
				t.Errorf("expected search anna, got %v", search)
			}
			if err := c.ValidQuery(); err != nil {
				return c.RespondError(err)
			}
			return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
		})
	}, http.MethodGet, "/q?search=anna", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetQueryFuncBadInteger(t *testing.T) {
	rec := serve(t, func(app *App) {
		app.Get("/q", func(c *Context) error {
			_ = c.GetQueryFunc(reflect.Int, "limit")
			if err := c.ValidQuery(); err != nil {
				return c.RespondError(err)
			}
			return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
		})
	}, http.MethodGet, "/q?limit=ten", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestErrorUnwrapReachesSentinel(t *testing.T) {
	sentinel := errors.New("record already exists")
	err := NewRequestError(errors.Wrap(sentinel, "child already has a check-in for this date"), http.StatusConflict)

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is to reach the sentinel through %T", err)
	}

	var webErr *Error
	if !errors.As(err, &webErr) {
		t.Fatalf("expected errors.As to find *Error in %v", err)
	}
	if webErr.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", webErr.Status)
	}
}

func TestRespondErrorHidesInternal(t *testing.T) {
	rec := serve(t, func(app *App) {
		app.Get("/boom", func(c *Context) error {
			return c.RespondError(errors.New("sql: connection refused"))
		})
	}, http.MethodGet, "/boom", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string

	mw := func(name string) Middleware {
		return func(handler Handler) Handler {
			return func(c *Context) error {
				order = append(order, name)
				return handler(c)
			}
		}
	}

	rec := serve(t, func(app *App) {
		app.Get("/mw", func(c *Context) error {
			order = append(order, "handler")
			return c.Respond(map[string]interface{}{"status": true}, http.StatusOK)
		}, mw("first"), mw("second"))
	}, http.MethodGet, "/mw", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}
