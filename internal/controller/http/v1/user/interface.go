package user

import (
	"context"

	"daycare/backend/internal/entity"
	"daycare/backend/internal/repository/postgres/user"
)

type User interface {
	GetById(ctx context.Context, id int) (entity.User, error)
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
	UpdateAll(ctx context.Context, request user.UpdateRequest) error
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
