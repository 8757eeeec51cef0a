package model

import "time"

// Role is a position in the user hierarchy.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleTSM       Role = "TSM"
	RoleTSA       Role = "TSA"
	RoleCSR       Role = "CSR"
	RoleWarehouse Role = "Warehouse"
	RoleIT        Role = "IT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTSM, RoleTSA, RoleCSR, RoleWarehouse, RoleIT:
		return true
	}
	return false
}

const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// User is an employee account. Manager and TSM hold the reference ids of
// the user's superiors.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	ReferenceID  string    `json:"reference_id" bson:"reference_id"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"first_name" bson:"first_name"`
	LastName     string    `json:"last_name" bson:"last_name"`
	Role         Role      `json:"role" bson:"role"`
	Department   string    `json:"department" bson:"department"`
	Manager      string    `json:"manager" bson:"manager"`
	TSM          string    `json:"tsm" bson:"tsm"`
	Status       string    `json:"status" bson:"status"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
