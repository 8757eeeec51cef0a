package model

import "time"

const (
	InquiryStatusOpen     = "Open"
	InquiryStatusEndorsed = "Endorsed"
	InquiryStatusClosed   = "Closed"
)

// Inquiry is a CSR ticket raised by a customer.
type Inquiry struct {
	ID            string    `json:"id" bson:"_id"`
	TicketNumber  string    `json:"ticket_number" bson:"ticket_number"`
	CompanyName   string    `json:"company_name" bson:"company_name"`
	ContactPerson string    `json:"contact_person" bson:"contact_person"`
	ContactNumber string    `json:"contact_number" bson:"contact_number"`
	EmailAddress  string    `json:"email_address" bson:"email_address"`
	Channel       string    `json:"channel" bson:"channel"`
	WrapUp        string    `json:"wrap_up" bson:"wrap_up"`
	Inquiry       string    `json:"inquiry" bson:"inquiry"`
	Status        string    `json:"status" bson:"status"`
	AssignedAgent string    `json:"assigned_agent" bson:"assigned_agent"`
	CSRAgent      string    `json:"csr_agent" bson:"csr_agent"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
