package model

import "time"

const (
	AssetStatusAvailable = "Available"
	AssetStatusAssigned  = "Assigned"
	AssetStatusDefective = "Defective"
	AssetStatusDisposed  = "Disposed"
)

// Asset is a tracked piece of IT equipment.
type Asset struct {
	ID           string     `json:"id" bson:"_id"`
	AssetTag     string     `json:"asset_tag" bson:"asset_tag"`
	AssetType    string     `json:"asset_type" bson:"asset_type"`
	Brand        string     `json:"brand" bson:"brand"`
	Model        string     `json:"model" bson:"model"`
	SerialNumber string     `json:"serial_number" bson:"serial_number"`
	Status       string     `json:"status" bson:"status"`
	AssignedTo   string     `json:"assigned_to" bson:"assigned_to"`
	Department   string     `json:"department" bson:"department"`
	Location     string     `json:"location" bson:"location"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty" bson:"purchase_date,omitempty"`
	Remarks      string     `json:"remarks" bson:"remarks"`
	ImageKey     string     `json:"image_key,omitempty" bson:"image_key,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}
