package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/auth"
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

func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("lower(email) = lower(?) AND deleted_at IS NULL", email).Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("user not found"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		return entity.User{}, errors.Wrap(err, "selecting user")
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := ` WHERE u.deleted_at IS NULL`
	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "", -1)
		whereQuery += fmt.Sprintf(` AND (u.first_name ilike '%s' OR u.last_name ilike '%s' OR u.email ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.Role != nil {
		role := strings.Replace(*filter.Role, "'", "", -1)
		whereQuery += fmt.Sprintf(` AND u.role = '%s'`, role)
	}
	if filter.CenterID != nil {
		whereQuery += fmt.Sprintf(` AND u.center_id = %d`, *filter.CenterID)
	}

	orderQuery := ` ORDER BY u.created_at desc`

	var limitQuery, offsetQuery string
	if filter.Page != nil {
		if filter.Limit == nil {
			filter.Limit = &defaultLimit
		}
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.email,
			u.first_name,
			u.last_name,
			u.role,
			u.phone,
			u.center_id,
			c.name
		FROM users u
		LEFT JOIN centers c ON c.id = u.center_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Email,
			&detail.FirstName,
			&detail.LastName,
			&detail.Role,
			&detail.Phone,
			&detail.CenterID,
			&detail.Center,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(u.id)
		FROM users u
		%s
	`, whereQuery)

	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting users"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err = r.ValidateStruct(&request, "Email", "Password", "FirstName", "LastName", "Role"); err != nil {
		return CreateResponse{}, err
	}

	role := strings.ToUpper(*request.Role)
	if role != auth.RoleAdmin && role != auth.RoleEducator && role != auth.RoleParent {
		return CreateResponse{}, web.NewRequestError(errors.New("invalid role"), http.StatusBadRequest)
	}
	request.Role = &role

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashed := string(hash)

	response := CreateResponse{
		Email:     request.Email,
		Password:  &hashed,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Role:      request.Role,
		Phone:     request.Phone,
		CenterID:  request.CenterID,
		CreatedAt: time.Now(),
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return CreateResponse{}, web.NewRequestError(errors.Wrap(postgres.ErrAlreadyExists, "email"), http.StatusConflict)
		}
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err = r.ValidateStruct(&request, "ID", "Email", "FirstName", "LastName", "Role"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	q.Set("email = ?", request.Email)
	q.Set("first_name = ?", request.FirstName)
	q.Set("last_name = ?", request.LastName)
	q.Set("role = ?", request.Role)
	q.Set("phone = ?", request.Phone)
	q.Set("center_id = ?", request.CenterID)

	if request.Password != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return web.NewRequestError(errors.Wrap(hashErr, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return web.NewRequestError(errors.Wrap(postgres.ErrAlreadyExists, "email"), http.StatusConflict)
		}
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err = r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Password != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return web.NewRequestError(errors.Wrap(hashErr, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}
	if request.FirstName != nil {
		q.Set("first_name = ?", request.FirstName)
	}
	if request.LastName != nil {
		q.Set("last_name = ?", request.LastName)
	}
	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if role != auth.RoleAdmin && role != auth.RoleEducator && role != auth.RoleParent {
			return web.NewRequestError(errors.New("invalid role"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.CenterID != nil {
		q.Set("center_id = ?", request.CenterID)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return web.NewRequestError(errors.Wrap(postgres.ErrAlreadyExists, "email"), http.StatusConflict)
		}
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "users", id)
}

var defaultLimit = 10
