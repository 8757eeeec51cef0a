package model

import "time"

// Email is the log entry of a message sent through the mail provider.
type Email struct {
	ID        string    `json:"id" bson:"_id"`
	From      string    `json:"from" bson:"from"`
	To        []string  `json:"to" bson:"to"`
	Subject   string    `json:"subject" bson:"subject"`
	Body      string    `json:"body" bson:"body"`
	MessageID string    `json:"message_id" bson:"message_id"`
	SentBy    string    `json:"sent_by" bson:"sent_by"`
	SentAt    time.Time `json:"sent_at" bson:"sent_at"`
}

// InboxMessage is the envelope of a message read from the shared mailbox.
type InboxMessage struct {
	UID     uint32    `json:"uid"`
	From    string    `json:"from"`
	To      []string  `json:"to"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Seen    bool      `json:"seen"`
}
