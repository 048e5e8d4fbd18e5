package entity

import (
	"github.com/uptrace/bun"
)

type Center struct {
	bun.BaseModel `bun:"table:centers"`

	BasicEntity
	Name        *string `json:"name" bun:"name"`
	Description *string `json:"description" bun:"description"`
	Address     *string `json:"address" bun:"address"`
	Phone       *string `json:"phone" bun:"phone"`
	Email       *string `json:"email" bun:"email"`
	OpenTime    *string `json:"open_time" bun:"open_time"`
	CloseTime   *string `json:"close_time" bun:"close_time"`
	Capacity    *int    `json:"capacity" bun:"capacity"`
}
