package classroom

import (
	"context"

	"daycare/backend/internal/repository/postgres/classroom"
)

type Classroom interface {
	GetList(ctx context.Context, filter classroom.Filter) ([]classroom.GetListResponse, int, error)
	Create(ctx context.Context, request classroom.CreateRequest) (classroom.CreateResponse, error)
	UpdateAll(ctx context.Context, request classroom.UpdateRequest) error
	UpdateColumns(ctx context.Context, request classroom.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
