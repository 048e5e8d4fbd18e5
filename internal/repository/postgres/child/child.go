package child

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
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

func (r Repository) GetById(ctx context.Context, id int) (entity.Child, error) {
	var detail entity.Child

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Child{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		return entity.Child{}, errors.Wrap(err, "selecting child")
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator, auth.RoleParent)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := ` WHERE ch.deleted_at IS NULL`
	if filter.Search != nil {
		search := *filter.Search
		whereQuery += fmt.Sprintf(` AND (ch.first_name ilike '%s' OR ch.last_name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.ClassroomID != nil {
		whereQuery += fmt.Sprintf(` AND ch.classroom_id = %d`, *filter.ClassroomID)
	}
	if filter.CenterID != nil {
		whereQuery += fmt.Sprintf(` AND ch.center_id = %d`, *filter.CenterID)
	}

	orderQuery := ` ORDER BY ch.last_name, ch.first_name`

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
			ch.id,
			ch.first_name,
			ch.last_name,
			ch.birth_date,
			ch.gender,
			ch.classroom_id,
			cl.name,
			ch.center_id
		FROM children ch
		LEFT JOIN classrooms cl ON cl.id = ch.classroom_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting children"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		var birthDate *string
		if err = rows.Scan(
			&detail.ID,
			&detail.FirstName,
			&detail.LastName,
			&birthDate,
			&detail.Gender,
			&detail.ClassroomID,
			&detail.Classroom,
			&detail.CenterID,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning children"), http.StatusInternalServerError)
		}
		if birthDate != nil {
			if parsed, parseErr := date.ParseDate(*birthDate); parseErr == nil {
				formatted := parsed.Format("2006-01-02")
				birthDate = &formatted
			}
		}
		detail.BirthDate = birthDate
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(ch.id)
		FROM children ch
		%s
	`, whereQuery)

	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting children"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator, auth.RoleParent)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			ch.id,
			ch.first_name,
			ch.last_name,
			ch.birth_date,
			ch.gender,
			ch.allergies,
			ch.emergency_contact_name,
			ch.emergency_contact_phone,
			ch.classroom_id,
			cl.name,
			ch.center_id
		FROM children ch
		LEFT JOIN classrooms cl ON cl.id = ch.classroom_id
		WHERE ch.deleted_at IS NULL AND ch.id = %d
	`, id)

	var detail GetDetailByIdResponse
	var birthDate *string
	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.FirstName,
		&detail.LastName,
		&birthDate,
		&detail.Gender,
		&detail.Allergies,
		&detail.EmergencyContactName,
		&detail.EmergencyContactPhone,
		&detail.ClassroomID,
		&detail.Classroom,
		&detail.CenterID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting child detail"), http.StatusInternalServerError)
	}
	if birthDate != nil {
		if parsed, parseErr := date.ParseDate(*birthDate); parseErr == nil {
			formatted := parsed.Format("2006-01-02")
			birthDate = &formatted
		}
	}
	detail.BirthDate = birthDate

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator)
	if err != nil {
		return CreateResponse{}, err
	}

	err = r.ValidateStruct(&request, "FirstName", "LastName")
	if err != nil {
		return CreateResponse{}, err
	}

	if request.BirthDate != nil {
		parsed, parseErr := date.ParseDate(*request.BirthDate)
		if parseErr != nil {
			return CreateResponse{}, web.NewRequestError(errors.New("invalid birth_date format"), http.StatusBadRequest)
		}
		formatted := parsed.Format("2006-01-02")
		request.BirthDate = &formatted
	}

	response := CreateResponse{
		FirstName:             request.FirstName,
		LastName:              request.LastName,
		BirthDate:             request.BirthDate,
		Gender:                request.Gender,
		Allergies:             request.Allergies,
		EmergencyContactName:  request.EmergencyContactName,
		EmergencyContactPhone: request.EmergencyContactPhone,
		ClassroomID:           request.ClassroomID,
		CenterID:              request.CenterID,
		CreatedAt:             time.Now(),
		CreatedBy:             claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating child"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator)
	if err != nil {
		return err
	}

	if err = r.ValidateStruct(&request, "ID", "FirstName", "LastName"); err != nil {
		return err
	}

	if request.BirthDate != nil {
		parsed, parseErr := date.ParseDate(*request.BirthDate)
		if parseErr != nil {
			return web.NewRequestError(errors.New("invalid birth_date format"), http.StatusBadRequest)
		}
		formatted := parsed.Format("2006-01-02")
		request.BirthDate = &formatted
	}

	q := r.NewUpdate().Table("children").Where("deleted_at IS NULL AND id = ?", request.ID)

	q.Set("first_name = ?", request.FirstName)
	q.Set("last_name = ?", request.LastName)
	q.Set("birth_date = ?", request.BirthDate)
	q.Set("gender = ?", request.Gender)
	q.Set("allergies = ?", request.Allergies)
	q.Set("emergency_contact_name = ?", request.EmergencyContactName)
	q.Set("emergency_contact_phone = ?", request.EmergencyContactPhone)
	q.Set("classroom_id = ?", request.ClassroomID)
	q.Set("center_id = ?", request.CenterID)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating child"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleEducator)
	if err != nil {
		return err
	}

	if err = r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("children").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.FirstName != nil {
		q.Set("first_name = ?", request.FirstName)
	}
	if request.LastName != nil {
		q.Set("last_name = ?", request.LastName)
	}
	if request.BirthDate != nil {
		parsed, parseErr := date.ParseDate(*request.BirthDate)
		if parseErr != nil {
			return web.NewRequestError(errors.New("invalid birth_date format"), http.StatusBadRequest)
		}
		q.Set("birth_date = ?", parsed.Format("2006-01-02"))
	}
	if request.Gender != nil {
		q.Set("gender = ?", request.Gender)
	}
	if request.Allergies != nil {
		q.Set("allergies = ?", request.Allergies)
	}
	if request.EmergencyContactName != nil {
		q.Set("emergency_contact_name = ?", request.EmergencyContactName)
	}
	if request.EmergencyContactPhone != nil {
		q.Set("emergency_contact_phone = ?", request.EmergencyContactPhone)
	}
	if request.ClassroomID != nil {
		q.Set("classroom_id = ?", request.ClassroomID)
	}
	if request.CenterID != nil {
		q.Set("center_id = ?", request.CenterID)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating child"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "children", id)
}

var defaultLimit = 10
