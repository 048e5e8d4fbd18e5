// Package postgresql wires bun on top of the postgres driver and carries the
// request-scoped helpers every repository uses.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/auth"
	"daycare/backend/internal/pkg/config"
)

type Database struct {
	*bun.DB
}

// NewDatabase opens the postgres connection pool described by the config.
func NewDatabase(cfg *config.Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)
	if cfg.DisableTLS {
		dsn += "?sslmode=disable"
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.DBDebug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{DB: db}
}

// CheckClaims pulls the authenticated claims from the context and, when roles
// are given, checks the caller holds one of them.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	return claims, nil
}

// ValidateStruct checks that the required fields of the request struct are
// present (non zero). Field names refer to the Go struct fields.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	missing := map[string]string{}
	for _, field := range requiredFields {
		for _, name := range strings.Split(field, ",") {
			f := v.FieldByName(name)
			if !f.IsValid() || f.IsZero() {
				missing[name] = "required field"
			}
		}
	}

	if len(missing) > 0 {
		return &web.Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: missing,
		}
	}

	return nil
}

// DeleteRow soft deletes a row by stamping deleted_at/deleted_by.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := d.NewUpdate().
		Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now()).
		Set("deleted_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusBadRequest)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking affected rows"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(errors.Errorf("%s not found", table), http.StatusNotFound)
	}

	return nil
}

// IsUniqueViolation reports whether the error is a postgres unique constraint
// violation (SQLSTATE 23505), the storage-level outcome of two writers racing
// on the same natural key.
func IsUniqueViolation(err error) bool {
	// pgdriver.Error exposes the server error fields, SQLSTATE under 'C'.
	var pgErr interface{ Field(field byte) string }
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
