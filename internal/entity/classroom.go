package entity

import (
	"github.com/uptrace/bun"
)

type Classroom struct {
	bun.BaseModel `bun:"table:classrooms"`

	BasicEntity
	Name        *string `json:"name" bun:"name"`
	Description *string `json:"description" bun:"description"`
	AgeGroupMin *int    `json:"age_group_min" bun:"age_group_min"`
	AgeGroupMax *int    `json:"age_group_max" bun:"age_group_max"`
	Capacity    *int    `json:"capacity" bun:"capacity"`
	CenterID    *int    `json:"center_id" bun:"center_id"`
}
