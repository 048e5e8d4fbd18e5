package postgresql

import (
	"testing"

	"github.com/pkg/errors"
)

// serverError mimics the field surface of a postgres wire error.
type serverError map[byte]string

func (e serverError) Error() string           { return "server error" }
func (e serverError) Field(field byte) string { return e[field] }

func TestIsUniqueViolation(t *testing.T) {
	duplicate := serverError{'C': "23505"}

	if !IsUniqueViolation(duplicate) {
		t.Error("expected SQLSTATE 23505 to be a unique violation")
	}
	if !IsUniqueViolation(errors.Wrap(duplicate, "creating attendance record")) {
		t.Error("expected unique violation to be detected through wrapping")
	}
	if IsUniqueViolation(serverError{'C': "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("connection reset")) {
		t.Error("plain error is not a unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil error is not a unique violation")
	}
}
