package model

import "time"

// Account statuses. Removed accounts are soft-deleted and hidden from default listings.
const (
	AccountStatusActive  = "Active"
	AccountStatusRemoved = "Removed"
)

// Account is a customer company owned by a sales agent (reference_id) and
// rolled up to a TSM and manager.
type Account struct {
	ID            string    `json:"id"`
	ReferenceID   string    `json:"reference_id"`
	TSM           string    `json:"tsm"`
	Manager       string    `json:"manager"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	ContactNumber string    `json:"contact_number"`
	EmailAddress  string    `json:"email_address"`
	Address       string    `json:"address"`
	Area          string    `json:"area"`
	TypeClient    string    `json:"type_client"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
