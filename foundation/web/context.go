package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped values through the handler chain.
// The embedded gin context keeps the raw request surface available.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs map[string]string
	queryErrs map[string]string
}

// BindFunc decodes the request body into the provided struct and checks that
// every field named in fields is present (non zero). Field names refer to the
// Go struct fields.
func (c *Context) BindFunc(obj interface{}, fields ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return &Error{
			Err:    errors.Wrap(err, "parsing request body"),
			Status: http.StatusBadRequest,
		}
	}

	missing := map[string]string{}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, field := range fields {
		for _, name := range strings.Split(field, ",") {
			f := v.FieldByName(name)
			if !f.IsValid() || f.IsZero() {
				missing[name] = "required field"
			}
		}
	}

	if len(missing) > 0 {
		return &Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: missing,
		}
	}

	return nil
}

// GetParam parses the named path parameter into the requested kind. Parse
// failures are collected and surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.addParamErr(name, "expected integer")
			return 0
		}
		return v
	case reflect.String:
		if value == "" {
			c.addParamErr(name, "required parameter")
		}
		return value
	default:
		c.addParamErr(name, fmt.Sprintf("unsupported kind %s", kind))
		return nil
	}
}

// GetQueryFunc parses the named query parameter into a pointer of the
// requested kind. A missing parameter yields a typed nil pointer so callers
// can treat it as an unset filter.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok || value == "" {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.addQueryErr(name, "expected integer")
			return (*int)(nil)
		}
		return &v
	case reflect.String:
		if !ok || value == "" {
			return (*string)(nil)
		}
		return &value
	case reflect.Bool:
		if !ok || value == "" {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.addQueryErr(name, "expected boolean")
			return (*bool)(nil)
		}
		return &v
	default:
		c.addQueryErr(name, fmt.Sprintf("unsupported kind %s", kind))
		return nil
	}
}

// ValidParam reports any path parameter parse failures collected so far.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return &Error{
		Err:    errors.New("invalid path parameters"),
		Status: http.StatusBadRequest,
		Fields: c.paramErrs,
	}
}

// ValidQuery reports any query parameter parse failures collected so far.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return &Error{
		Err:    errors.New("invalid query parameters"),
		Status: http.StatusBadRequest,
		Fields: c.queryErrs,
	}
}

// Respond writes the data to the client encoded as json with the given status
// code.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError inspects the error for web specific context and writes the
// matching response. Unknown errors become a 500 without leaking internals.
func (c *Context) RespondError(err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		response := gin.H{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			response["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, response)
		return nil
	}

	log.Println("unexpected error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  "internal server error",
		"status": false,
	})
	return nil
}

func (c *Context) addParamErr(name, reason string) {
	if c.paramErrs == nil {
		c.paramErrs = map[string]string{}
	}
	c.paramErrs[name] = reason
}

func (c *Context) addQueryErr(name, reason string) {
	if c.queryErrs == nil {
		c.queryErrs = map[string]string{}
	}
	c.queryErrs[name] = reason
}
