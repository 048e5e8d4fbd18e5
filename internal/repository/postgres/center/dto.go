package center

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	Capacity  *int    `json:"capacity"`
}

type CreateRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Address     *string `json:"address" form:"address"`
	Phone       *string `json:"phone" form:"phone"`
	Email       *string `json:"email" form:"email"`
	OpenTime    *string `json:"open_time" form:"open_time"`
	CloseTime   *string `json:"close_time" form:"close_time"`
	Capacity    *int    `json:"capacity" form:"capacity"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:centers"`

	ID int `json:"id" bun:"-"`

	Name        *string `json:"name" bun:"name"`
	Description *string `json:"description" bun:"description"`
	Address     *string `json:"address" bun:"address"`
	Phone       *string `json:"phone" bun:"phone"`
	Email       *string `json:"email" bun:"email"`
	OpenTime    *string `json:"open_time" bun:"open_time"`
	CloseTime   *string `json:"close_time" bun:"close_time"`
	Capacity    *int    `json:"capacity" bun:"capacity"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Address     *string `json:"address" form:"address"`
	Phone       *string `json:"phone" form:"phone"`
	Email       *string `json:"email" form:"email"`
	OpenTime    *string `json:"open_time" form:"open_time"`
	CloseTime   *string `json:"close_time" form:"close_time"`
	Capacity    *int    `json:"capacity" form:"capacity"`
}
