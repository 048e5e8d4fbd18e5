package center

import (
	"context"

	"daycare/backend/internal/repository/postgres/center"
)

type Center interface {
	GetList(ctx context.Context, filter center.Filter) ([]center.GetListResponse, int, error)
	Create(ctx context.Context, request center.CreateRequest) (center.CreateResponse, error)
	UpdateAll(ctx context.Context, request center.UpdateRequest) error
	UpdateColumns(ctx context.Context, request center.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
