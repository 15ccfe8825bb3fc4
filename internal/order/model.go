package order

import "time"

// Order statuses. Updates accept any member of the set; no transition
// graph is enforced at this layer.
const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusConfirmed  = "confirmed"
	StatusPreparing  = "preparing"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusPaid:       true,
	StatusConfirmed:  true,
	StatusPreparing:  true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func ValidStatus(s string) bool { return validStatuses[s] }

type Order struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	// Total as string (NUMERIC in Postgres); equals the sum of
	// quantity * unit_price over items at creation time.
	Total           string       `json:"total"`
	Items           []Item       `json:"items"`
	DeliveryAddress string       `json:"delivery_address,omitempty"`
	DeliveryDate    *time.Time   `json:"delivery_date,omitempty"`
	DeliveryNotes   string       `json:"delivery_notes,omitempty"`
	Image           string       `json:"image,omitempty"`
	ImageThumbnail  string       `json:"image_thumbnail,omitempty"`
	Customer        *CustomerRef `json:"customer,omitempty"` // populated on reads
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// UnitPrice is captured from the catalog at creation time and is
	// never recomputed afterwards.
	UnitPrice string      `json:"unit_price"`
	Product   *ProductRef `json:"product,omitempty"` // populated on customer listings
}

// CustomerRef is the read-only projection of the referenced customer
// returned alongside orders. The stored reference stays customer_id.
type CustomerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ProductRef is the read-only projection of an item's product.
type ProductRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image,omitempty"`
}
