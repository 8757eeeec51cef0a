package model

import "time"

const (
	NotificationTypeInquiry  = "inquiry"
	NotificationTypeTransfer = "transfer"
	NotificationTypeSystem   = "system"
)

// Notification is a message addressed to one user by reference id.
type Notification struct {
	ID          string    `json:"id" bson:"_id"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	Type        string    `json:"type" bson:"type"`
	Message     string    `json:"message" bson:"message"`
	Reference   string    `json:"reference" bson:"reference"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
