package entity

import (
	"github.com/uptrace/bun"
)

type Child struct {
	bun.BaseModel `bun:"table:children"`

	BasicEntity
	FirstName             *string `json:"first_name" bun:"first_name"`
	LastName              *string `json:"last_name" bun:"last_name"`
	BirthDate             *string `json:"birth_date" bun:"birth_date"`
	Gender                *string `json:"gender" bun:"gender"`
	Allergies             *string `json:"allergies" bun:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name" bun:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" bun:"emergency_contact_phone"`
	ClassroomID           *int    `json:"classroom_id" bun:"classroom_id"`
	CenterID              *int    `json:"center_id" bun:"center_id"`
}
