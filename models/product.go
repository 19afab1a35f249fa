package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultSizes is applied when a product is created without an explicit size run.
var DefaultSizes = []string{"S", "M", "L", "XL"}

type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	PriceCents  int64              `json:"price_cents" bson:"price_cents"`
	Currency    string             `json:"currency" bson:"currency"`
	Category    string             `json:"category" bson:"category"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Slug        string             `json:"slug" bson:"slug"`
	Images      []string           `json:"images" bson:"images"`
	Colors      []string           `json:"colors" bson:"colors"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	SKU         string             `json:"sku,omitempty" bson:"sku,omitempty"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}
