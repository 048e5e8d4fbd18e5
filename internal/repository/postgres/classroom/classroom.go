package classroom

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

func (r Repository) GetById(ctx context.Context, id int) (entity.Classroom, error) {
	var detail entity.Classroom

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Classroom{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		return entity.Classroom{}, errors.Wrap(err, "selecting classroom")
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator, auth.RoleParent)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := ` WHERE cl.deleted_at IS NULL`
	if filter.Search != nil {
		whereQuery += fmt.Sprintf(` AND cl.name ilike '%s'`, "%"+*filter.Search+"%")
	}
	if filter.CenterID != nil {
		whereQuery += fmt.Sprintf(` AND cl.center_id = %d`, *filter.CenterID)
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
			cl.id,
			cl.name,
			cl.description,
			cl.age_group_min,
			cl.age_group_max,
			cl.capacity,
			cl.center_id,
			c.name,
			count(ch.id)
		FROM classrooms cl
		LEFT JOIN centers c ON c.id = cl.center_id
		LEFT JOIN children ch ON ch.classroom_id = cl.id AND ch.deleted_at IS NULL
		%s
		GROUP BY cl.id, c.name
		ORDER BY cl.name %s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting classrooms"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Description,
			&detail.AgeGroupMin,
			&detail.AgeGroupMax,
			&detail.Capacity,
			&detail.CenterID,
			&detail.Center,
			&detail.ChildCount,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning classrooms"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(cl.id)
		FROM classrooms cl
		%s
	`, whereQuery)

	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting classrooms"), http.StatusInternalServerError)
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
		AgeGroupMin: request.AgeGroupMin,
		AgeGroupMax: request.AgeGroupMax,
		Capacity:    request.Capacity,
		CenterID:    request.CenterID,
		CreatedAt:   time.Now(),
		CreatedBy:   claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating classroom"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("classrooms").Where("deleted_at IS NULL AND id = ?", request.ID)

	q.Set("name = ?", request.Name)
	q.Set("description = ?", request.Description)
	q.Set("age_group_min = ?", request.AgeGroupMin)
	q.Set("age_group_max = ?", request.AgeGroupMax)
	q.Set("capacity = ?", request.Capacity)
	q.Set("center_id = ?", request.CenterID)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating classroom"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("classrooms").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Description != nil {
		q.Set("description = ?", request.Description)
	}
	if request.AgeGroupMin != nil {
		q.Set("age_group_min = ?", request.AgeGroupMin)
	}
	if request.AgeGroupMax != nil {
		q.Set("age_group_max = ?", request.AgeGroupMax)
	}
	if request.Capacity != nil {
		q.Set("capacity = ?", request.Capacity)
	}
	if request.CenterID != nil {
		q.Set("center_id = ?", request.CenterID)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating classroom"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "classrooms", id)
}

var defaultLimit = 10
