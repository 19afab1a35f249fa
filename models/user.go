package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is part of the store schema but no endpoint operates on it yet.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Address  string             `json:"address" bson:"address"`
	Age      *int               `json:"age,omitempty" bson:"age,omitempty"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}

// Validate enforces the schema constraints before a user document is written.
func (u User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Address == "" {
		return errors.New("address is required")
	}
	if u.Age != nil && (*u.Age < 0 || *u.Age > 120) {
		return fmt.Errorf("age %d is out of range 0-120", *u.Age)
	}
	return nil
}
