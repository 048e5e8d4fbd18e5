package child

import (
	"context"

	"daycare/backend/internal/entity"
	"daycare/backend/internal/repository/postgres/child"
)

type Child interface {
	GetById(ctx context.Context, id int) (entity.Child, error)
	GetList(ctx context.Context, filter child.Filter) ([]child.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (child.GetDetailByIdResponse, error)
	Create(ctx context.Context, request child.CreateRequest) (child.CreateResponse, error)
	UpdateAll(ctx context.Context, request child.UpdateRequest) error
	UpdateColumns(ctx context.Context, request child.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
