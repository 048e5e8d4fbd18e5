package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email     *string `json:"email" bun:"email"`
	Password  *string `json:"password" bun:"password"`
	FirstName *string `json:"first_name" bun:"first_name"`
	LastName  *string `json:"last_name" bun:"last_name"`
	Role      *string `json:"role" bun:"role"`
	Phone     *string `json:"phone" bun:"phone"`
	CenterID  *int    `json:"center_id" bun:"center_id"`
}
