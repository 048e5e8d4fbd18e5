package classroom

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	CenterID *int
}

type GetListResponse struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	AgeGroupMin *int    `json:"age_group_min"`
	AgeGroupMax *int    `json:"age_group_max"`
	Capacity    *int    `json:"capacity"`
	CenterID    *int    `json:"center_id"`
	Center      *string `json:"center"`
	ChildCount  int     `json:"child_count"`
}

type CreateRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	AgeGroupMin *int    `json:"age_group_min" form:"age_group_min"`
	AgeGroupMax *int    `json:"age_group_max" form:"age_group_max"`
	Capacity    *int    `json:"capacity" form:"capacity"`
	CenterID    *int    `json:"center_id" form:"center_id"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:classrooms"`

	ID int `json:"id" bun:"-"`

	Name        *string `json:"name" bun:"name"`
	Description *string `json:"description" bun:"description"`
	AgeGroupMin *int    `json:"age_group_min" bun:"age_group_min"`
	AgeGroupMax *int    `json:"age_group_max" bun:"age_group_max"`
	Capacity    *int    `json:"capacity" bun:"capacity"`
	CenterID    *int    `json:"center_id" bun:"center_id"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	AgeGroupMin *int    `json:"age_group_min" form:"age_group_min"`
	AgeGroupMax *int    `json:"age_group_max" form:"age_group_max"`
	Capacity    *int    `json:"capacity" form:"capacity"`
	CenterID    *int    `json:"center_id" form:"center_id"`
}
