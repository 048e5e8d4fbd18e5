package center

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

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

func (r Repository) GetById(ctx context.Context, id int) (entity.Center, error) {
	var detail entity.Center

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Center{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		return entity.Center{}, errors.Wrap(err, "selecting center")
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator, auth.RoleParent)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := ` WHERE c.deleted_at IS NULL`
	if filter.Search != nil {
		whereQuery += fmt.Sprintf(` AND c.name ilike '%s'`, "%"+*filter.Search+"%")
	}

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
			c.id,
			c.name,
			c.address,
			c.phone,
			c.email,
			c.open_time,
			c.close_time,
			c.capacity
		FROM centers c
		%s
		ORDER BY c.name %s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting centers"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		var openTime, closeTime []byte
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Address,
			&detail.Phone,
			&detail.Email,
			&openTime,
			&closeTime,
			&detail.Capacity,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning centers"), http.StatusInternalServerError)
		}
		if openTime != nil {
			value := string(openTime)
			detail.OpenTime = &value
		}
		if closeTime != nil {
			value := string(closeTime)
			detail.CloseTime = &value
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(c.id)
		FROM centers c
		%s
	`, whereQuery)

	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting centers"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err = r.ValidateStruct(&request, "Name"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		Phone:       request.Phone,
		Email:       request.Email,
		OpenTime:    request.OpenTime,
		CloseTime:   request.CloseTime,
		Capacity:    request.Capacity,
		CreatedAt:   time.Now(),
		CreatedBy:   claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating center"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err = r.ValidateStruct(&request, "ID", "Name"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("centers").Where("deleted_at IS NULL AND id = ?", request.ID)

	q.Set("name = ?", request.Name)
	q.Set("description = ?", request.Description)
	q.Set("address = ?", request.Address)
	q.Set("phone = ?", request.Phone)
	q.Set("email = ?", request.Email)
	q.Set("open_time = ?", request.OpenTime)
	q.Set("close_time = ?", request.CloseTime)
	q.Set("capacity = ?", request.Capacity)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating center"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("centers").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Description != nil {
		q.Set("description = ?", request.Description)
	}
	if request.Address != nil {
		q.Set("address = ?", request.Address)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.OpenTime != nil {
		q.Set("open_time = ?", request.OpenTime)
	}
	if request.CloseTime != nil {
		q.Set("close_time = ?", request.CloseTime)
	}
	if request.Capacity != nil {
		q.Set("capacity = ?", request.Capacity)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating center"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "centers", id)
}

var defaultLimit = 10
