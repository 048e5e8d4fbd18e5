package child

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit       *int
	Offset      *int
	Page        *int
	Search      *string
	ClassroomID *int
	CenterID    *int
}

type GetListResponse struct {
	ID                    int     `json:"id"`
	FirstName             *string `json:"first_name"`
	LastName              *string `json:"last_name"`
	BirthDate             *string `json:"birth_date"`
	Gender                *string `json:"gender"`
	ClassroomID           *int    `json:"classroom_id"`
	Classroom             *string `json:"classroom"`
	CenterID              *int    `json:"center_id"`
}

type GetDetailByIdResponse struct {
	ID                    int     `json:"id"`
	FirstName             *string `json:"first_name"`
	LastName              *string `json:"last_name"`
	BirthDate             *string `json:"birth_date"`
	Gender                *string `json:"gender"`
	Allergies             *string `json:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	ClassroomID           *int    `json:"classroom_id"`
	Classroom             *string `json:"classroom"`
	CenterID              *int    `json:"center_id"`
}

type CreateRequest struct {
	FirstName             *string `json:"first_name" form:"first_name"`
	LastName              *string `json:"last_name" form:"last_name"`
	BirthDate             *string `json:"birth_date" form:"birth_date"`
	Gender                *string `json:"gender" form:"gender"`
	Allergies             *string `json:"allergies" form:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name" form:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" form:"emergency_contact_phone"`
	ClassroomID           *int    `json:"classroom_id" form:"classroom_id"`
	CenterID              *int    `json:"center_id" form:"center_id"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:children"`

	ID int `json:"id" bun:"-"`

	FirstName             *string `json:"first_name" bun:"first_name"`
	LastName              *string `json:"last_name" bun:"last_name"`
	BirthDate             *string `json:"birth_date" bun:"birth_date"`
	Gender                *string `json:"gender" bun:"gender"`
	Allergies             *string `json:"allergies" bun:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name" bun:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" bun:"emergency_contact_phone"`
	ClassroomID           *int    `json:"classroom_id" bun:"classroom_id"`
	CenterID              *int    `json:"center_id" bun:"center_id"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID                    int     `json:"id" form:"id"`
	FirstName             *string `json:"first_name" form:"first_name"`
	LastName              *string `json:"last_name" form:"last_name"`
	BirthDate             *string `json:"birth_date" form:"birth_date"`
	Gender                *string `json:"gender" form:"gender"`
	Allergies             *string `json:"allergies" form:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name" form:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" form:"emergency_contact_phone"`
	ClassroomID           *int    `json:"classroom_id" form:"classroom_id"`
	CenterID              *int    `json:"center_id" form:"center_id"`
}
