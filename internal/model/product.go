package model

import "time"

// Product is a warehouse stock item. Quantity never goes below zero.
type Product struct {
	ID           string    `json:"id" bson:"_id"`
	SKU          string    `json:"sku" bson:"sku"`
	Name         string    `json:"name" bson:"name"`
	Category     string    `json:"category" bson:"category"`
	Unit         string    `json:"unit" bson:"unit"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	ReorderLevel int       `json:"reorder_level" bson:"reorder_level"`
	Price        float64   `json:"price" bson:"price"`
	Location     string    `json:"location" bson:"location"`
	ImageKey     string    `json:"image_key,omitempty" bson:"image_key,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
