package models

import "testing"

func TestCartItem_NormalizedQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"positive passes through", 3, 3},
		{"one passes through", 1, 1},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CartItem{Slug: "happy-duck-tee", Quantity: tt.quantity}
			if got := item.NormalizedQuantity(); got != tt.want {
				t.Errorf("NormalizedQuantity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUser_Validate(t *testing.T) {
	age := func(n int) *int { return &n }

	valid := User{Name: "Jane", Email: "jane@example.com", Address: "1 Duck Lane"}

	tests := []struct {
		name    string
		mutate  func(u User) User
		wantErr bool
	}{
		{"valid without age", func(u User) User { return u }, false},
		{"valid with age", func(u User) User { u.Age = age(30); return u }, false},
		{"age lower bound", func(u User) User { u.Age = age(0); return u }, false},
		{"age upper bound", func(u User) User { u.Age = age(120); return u }, false},
		{"negative age", func(u User) User { u.Age = age(-1); return u }, true},
		{"age too high", func(u User) User { u.Age = age(121); return u }, true},
		{"missing name", func(u User) User { u.Name = ""; return u }, true},
		{"missing email", func(u User) User { u.Email = ""; return u }, true},
		{"missing address", func(u User) User { u.Address = ""; return u }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
