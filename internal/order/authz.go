package order

// Role of the authenticated caller, as asserted by the gateway.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Requester is the authorization context handed to the service by the
// HTTP layer. A nil *Requester means an internal caller and skips
// ownership checks entirely.
type Requester struct {
	UserID string
	Role   Role
}

// BypassesOwnership is the single rule the service consults: admins and
// internal callers may read any customer's orders.
func (r *Requester) BypassesOwnership() bool {
	return r == nil || r.Role == RoleAdmin
}
