// Package order implements the order lifecycle: creating orders priced
// against the live catalog, listing and mutating them, and the
// ownership rule restricting customers to their own orders.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo      Repository
	customers CustomerLookup
	products  ProductLookup
}

func NewService(repo Repository, customers CustomerLookup, products ProductLookup) *Service {
	return &Service{repo: repo, customers: customers, products: products}
}

// Create prices every line item against the current catalog and
// persists the order. The caller never supplies prices or a status:
// unit prices are snapshotted from the product service and the order
// always starts as pending. When the payload carries no customer_id the
// order is attached to the requesting user's own profile.
func (s *Service) Create(ctx context.Context, in *CreateOrderRequest, requestingUserID string) (*Order, error) {
	customerID := in.CustomerID
	if customerID == "" {
		prof, err := s.customers.FindByUserID(ctx, requestingUserID)
		if err != nil {
			return nil, err
		}
		customerID = prof.ID
	}

	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	for i, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive, got %d", i, it.Quantity)
		}
	}

	// Resolve every product concurrently; any miss aborts the whole
	// create before anything is written.
	items := make([]Item, len(in.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i := range in.Items {
		i := i
		g.Go(func() error {
			reqItem := in.Items[i]
			p, err := s.products.FindOne(gctx, reqItem.ProductID)
			if err != nil {
				return err
			}
			items[i] = Item{
				ID:        uuid.NewString(),
				ProductID: reqItem.ProductID,
				Quantity:  reqItem.Quantity,
				UnitPrice: p.Price,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, it := range items {
		unit, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("product %s: invalid price %q: %w", it.ProductID, it.UnitPrice, err)
		}
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	o := &Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		Status:          StatusPending,
		Total:           total.StringFixed(2),
		Items:           items,
		DeliveryAddress: in.DeliveryAddress,
		DeliveryNotes:   in.DeliveryNotes,
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateFromCart is the checkout entry point; the cart payload has the
// same shape as a direct creation and goes through the same pricing.
func (s *Service) CreateFromCart(ctx context.Context, in *CreateOrderRequest, requestingUserID string) (*Order, error) {
	return s.Create(ctx, in, requestingUserID)
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the patch into the stored order. Items in the patch are
// written verbatim and the total is never recomputed here.
func (s *Service) Update(ctx context.Context, id string, patch *UpdateOrderRequest) (*Order, error) {
	if patch.Status != nil && !ValidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("order", id)
	}
	return nil
}

// ListByCustomer returns the customer's orders, newest first. Non-admin
// requesters must resolve to the requested customer or get ErrForbidden;
// a nil requester (internal caller) and admins skip the check.
func (s *Service) ListByCustomer(ctx context.Context, customerID string, requester *Requester) ([]Order, error) {
	if !requester.BypassesOwnership() {
		prof, err := s.customers.FindByUserID(ctx, requester.UserID)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrForbidden
		}
		if err != nil {
			return nil, err
		}
		if prof.ID != customerID {
			return nil, ErrForbidden
		}
	}
	return s.repo.ListByCustomer(ctx, customerID)
}
