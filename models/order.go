package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order is recorded once per checkout attempt, conceptually pending. Nothing in
// this service ever transitions it to paid; reconciliation is out of scope.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Items           []OrderItem        `json:"items" bson:"items"`
	AmountTotal     int64              `json:"amount_total" bson:"amount_total"`
	Currency        string             `json:"currency" bson:"currency"`
	StripeSessionID string             `json:"stripe_session_id,omitempty" bson:"stripe_session_id,omitempty"`
}

type OrderItem struct {
	Slug       string `json:"slug" bson:"slug"`
	Title      string `json:"title" bson:"title"`
	Quantity   int    `json:"quantity" bson:"quantity"`
	PriceCents int64  `json:"price_cents" bson:"price_cents"`
	Size       string `json:"size,omitempty" bson:"size,omitempty"`
	Color      string `json:"color,omitempty" bson:"color,omitempty"`
}
