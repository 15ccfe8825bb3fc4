package customer

import "time"

// Customer is the profile record for a shopper, distinct from the
// authenticated user account it is linked to via UserID.
type Customer struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCustomerRequest payload de creación de perfil.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	UserID string `json:"user_id" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Name   string `json:"name"    example:"Ana Gómez"`
	Email  string `json:"email"   example:"ana@example.com"`
	Phone  string `json:"phone"   example:"+34 600 123 456"`
}

// UpdateCustomerRequest payload of partial update.
// swagger:model UpdateCustomerRequest
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
