package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	Role     *string
	CenterID *int
}

// AuthClaims is the identity slice embedded into issued tokens.
type AuthClaims struct {
	ID   int
	Role string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID        int     `json:"id"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
	CenterID  *int    `json:"center_id"`
	Center    *string `json:"center"`
}

type CreateRequest struct {
	Email     *string `json:"email" form:"email"`
	Password  *string `json:"password" form:"password"`
	FirstName *string `json:"first_name" form:"first_name"`
	LastName  *string `json:"last_name" form:"last_name"`
	Role      *string `json:"role" form:"role"`
	Phone     *string `json:"phone" form:"phone"`
	CenterID  *int    `json:"center_id" form:"center_id"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID int `json:"id" bun:"-"`

	Email     *string `json:"email" bun:"email"`
	Password  *string `json:"-" bun:"password"`
	FirstName *string `json:"first_name" bun:"first_name"`
	LastName  *string `json:"last_name" bun:"last_name"`
	Role      *string `json:"role" bun:"role"`
	Phone     *string `json:"phone" bun:"phone"`
	CenterID  *int    `json:"center_id" bun:"center_id"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id"`
	Email     *string `json:"email" form:"email"`
	Password  *string `json:"password" form:"password"`
	FirstName *string `json:"first_name" form:"first_name"`
	LastName  *string `json:"last_name" form:"last_name"`
	Role      *string `json:"role" form:"role"`
	Phone     *string `json:"phone" form:"phone"`
	CenterID  *int    `json:"center_id" form:"center_id"`
}
