package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Progress types that move money onto the parent activity.
const (
	ProgressTypeQuotation  = "Quotation"
	ProgressTypeSalesOrder = "Sales Order"
)

// ActivityStatusAssisted is the status given to new activities.
const ActivityStatusAssisted = "Assisted"

// Activity is a sales touchpoint logged by an agent against a company.
type Activity struct {
	ID               string          `json:"id"`
	ActivityNumber   string          `json:"activity_number"`
	AccountID        string          `json:"account_id"`
	ReferenceID      string          `json:"reference_id"`
	TSM              string          `json:"tsm"`
	Manager          string          `json:"manager"`
	CompanyName      string          `json:"company_name"`
	TypeActivity     string          `json:"type_activity"`
	Status           string          `json:"status"`
	Remarks          string          `json:"remarks"`
	QuotationAmount  decimal.Decimal `json:"quotation_amount"`
	SalesOrderAmount decimal.Decimal `json:"sales_order_amount"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Progress is one step recorded against an activity (quotation sent, SO
// received, delivered, ...).
type Progress struct {
	ID              string          `json:"id"`
	ActivityID      string          `json:"activity_id"`
	ReferenceID     string          `json:"reference_id"`
	TypeActivity    string          `json:"type_activity"`
	Status          string          `json:"status"`
	QuotationNumber string          `json:"quotation_number"`
	SONumber        string          `json:"so_number"`
	Amount          decimal.Decimal `json:"amount"`
	Remarks         string          `json:"remarks"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ActivityStatusSummary is one bar of the activity dashboard chart.
type ActivityStatusSummary struct {
	Status           string          `json:"status"`
	Count            int             `json:"count"`
	QuotationAmount  decimal.Decimal `json:"quotation_amount"`
	SalesOrderAmount decimal.Decimal `json:"sales_order_amount"`
}
