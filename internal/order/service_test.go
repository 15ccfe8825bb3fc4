package order

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// ---------- stubs ----------
//

type stubRepo struct {
	byID       map[string]*Order
	byCustomer map[string][]Order
	created    *Order
	lastPatch  *UpdateOrderRequest
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: make(map[string]*Order), byCustomer: make(map[string][]Order)}
}

func (s *stubRepo) Create(ctx context.Context, o *Order) error {
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	s.created = &cp
	s.byID[o.ID] = &cp
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, notFound("order", id)
	}
	cp := *o
	return &cp, nil
}

func (s *stubRepo) List(ctx context.Context) ([]Order, error) {
	out := make([]Order, 0, len(s.byID))
	for _, o := range s.byID {
		out = append(out, *o)
	}
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, id string, patch *UpdateOrderRequest) (*Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, notFound("order", id)
	}
	s.lastPatch = patch
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.DeliveryAddress != nil {
		o.DeliveryAddress = *patch.DeliveryAddress
	}
	cp := *o
	return &cp, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

func (s *stubRepo) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	return s.byCustomer[customerID], nil
}

type stubCustomers struct {
	profiles map[string]*CustomerRef // userID -> profile
	calls    int
	err      error // devuelto tal cual cuando está presente
}

func (s *stubCustomers) FindByUserID(ctx context.Context, userID string) (*CustomerRef, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, notFound("customer profile", userID)
	}
	return p, nil
}

type stubProducts struct {
	mu     sync.Mutex
	prices map[string]string // productID -> current price
	calls  int
}

func (s *stubProducts) FindOne(ctx context.Context, productID string) (*ProductRef, error) {
	s.mu.Lock()
	s.calls++
	price, ok := s.prices[productID]
	s.mu.Unlock()
	if !ok {
		return nil, notFound("product", productID)
	}
	return &ProductRef{ID: productID, Name: "prod-" + productID, Price: price}, nil
}

func newTestService() (*Service, *stubRepo, *stubCustomers, *stubProducts) {
	repo := newStubRepo()
	customers := &stubCustomers{profiles: map[string]*CustomerRef{}}
	products := &stubProducts{prices: map[string]string{}}
	return NewService(repo, customers, products), repo, customers, products
}

//
// ---------- create ----------
//

func TestCreate_PricesItemsFromCatalog(t *testing.T) {
	svc, repo, customers, products := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}
	products.prices["P1"] = "10.00"
	products.prices["P2"] = "5.00"

	o, err := svc.Create(context.Background(), &CreateOrderRequest{
		Items: []CreateOrderItem{
			{ProductID: "P1", Quantity: 2},
			{ProductID: "P2", Quantity: 1},
		},
	}, "U1")
	require.NoError(t, err)

	assert.Equal(t, "C1", o.CustomerID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "25.00", o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "10.00", o.Items[0].UnitPrice)
	assert.Equal(t, "5.00", o.Items[1].UnitPrice)
	require.NotNil(t, repo.created)
	assert.Equal(t, o.ID, repo.created.ID)
	assert.Equal(t, 2, products.calls)
}

func TestCreate_PriceSnapshotSurvivesCatalogChange(t *testing.T) {
	svc, _, customers, products := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}
	products.prices["P1"] = "10.00"

	o, err := svc.Create(context.Background(), &CreateOrderRequest{
		Items: []CreateOrderItem{{ProductID: "P1", Quantity: 3}},
	}, "U1")
	require.NoError(t, err)

	// the catalog price changes afterwards; the stored snapshot must not
	products.prices["P1"] = "99.99"
	assert.Equal(t, "10.00", o.Items[0].UnitPrice)
	assert.Equal(t, "30.00", o.Total)
}

func TestCreate_ExplicitCustomerSkipsLookup(t *testing.T) {
	svc, _, customers, products := newTestService()
	products.prices["P1"] = "1.50"

	o, err := svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID: "C9",
		Items:      []CreateOrderItem{{ProductID: "P1", Quantity: 1}},
	}, "U-ignored")
	require.NoError(t, err)

	assert.Equal(t, "C9", o.CustomerID)
	assert.Zero(t, customers.calls, "customer lookup must not run when customer_id is explicit")
}

func TestCreate_UnknownProfileFails(t *testing.T) {
	svc, repo, _, products := newTestService()
	products.prices["P1"] = "1.00"

	_, err := svc.Create(context.Background(), &CreateOrderRequest{
		Items: []CreateOrderItem{{ProductID: "P1", Quantity: 1}},
	}, "nobody")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "customer profile", nf.Entity)
	assert.Nil(t, repo.created)
}

func TestCreate_UnknownProductAbortsWholeOrder(t *testing.T) {
	svc, repo, customers, products := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}
	products.prices["P1"] = "10.00" // P2 missing

	_, err := svc.Create(context.Background(), &CreateOrderRequest{
		Items: []CreateOrderItem{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "P2", Quantity: 4},
		},
	}, "U1")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Entity)
	assert.Equal(t, "P2", nf.ID)
	assert.Nil(t, repo.created, "nothing may be persisted when any product is unknown")
}

func TestCreate_RejectsEmptyItems(t *testing.T) {
	svc, _, customers, _ := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}

	_, err := svc.Create(context.Background(), &CreateOrderRequest{}, "U1")
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCreate_RejectsNonPositiveQuantity(t *testing.T) {
	svc, repo, customers, _ := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}

	_, err := svc.Create(context.Background(), &CreateOrderRequest{
		Items: []CreateOrderItem{{ProductID: "P1", Quantity: 0}},
	}, "U1")
	require.Error(t, err)
	assert.Nil(t, repo.created)
}

func TestCreateFromCart_DelegatesToCreate(t *testing.T) {
	svc, _, customers, products := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}
	products.prices["P1"] = "2.25"

	o, err := svc.CreateFromCart(context.Background(), &CreateOrderRequest{
		Items: []CreateOrderItem{{ProductID: "P1", Quantity: 4}},
	}, "U1")
	require.NoError(t, err)
	assert.Equal(t, "9.00", o.Total)
	assert.Equal(t, StatusPending, o.Status)
}

//
// ---------- update / delete ----------
//

func TestUpdate_RejectsInvalidStatus(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.byID["o1"] = &Order{ID: "o1", Status: StatusPending}

	bad := "wtf"
	_, err := svc.Update(context.Background(), "o1", &UpdateOrderRequest{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, repo.lastPatch, "repo must not be touched on invalid status")
}

func TestUpdate_AcceptsAnyValidStatus(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.byID["o1"] = &Order{ID: "o1", Status: StatusDelivered, Total: "20.00"}

	// no transition graph: delivered -> pending is allowed
	st := StatusPending
	o, err := svc.Update(context.Background(), "o1", &UpdateOrderRequest{Status: &st})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
}

func TestUpdate_DoesNotRecomputeTotal(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.byID["o1"] = &Order{ID: "o1", Status: StatusPending, Total: "20.00"}

	o, err := svc.Update(context.Background(), "o1", &UpdateOrderRequest{
		Items: []UpdateOrderItem{{ProductID: "P1", Quantity: 9, UnitPrice: "100.00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "20.00", o.Total, "item patches never re-price the order")
	require.NotNil(t, repo.lastPatch)
	assert.Len(t, repo.lastPatch.Items, 1)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	addr := "somewhere"
	_, err := svc.Update(context.Background(), "missing", &UpdateOrderRequest{DeliveryAddress: &addr})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_OKAndNotFound(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.byID["o1"] = &Order{ID: "o1"}

	require.NoError(t, svc.Delete(context.Background(), "o1"))
	err := svc.Delete(context.Background(), "o1")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order", nf.Entity)
}

//
// ---------- listByCustomer authorization ----------
//

func TestListByCustomer_OwnOrdersAllowed(t *testing.T) {
	svc, repo, customers, _ := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}
	repo.byCustomer["C1"] = []Order{{ID: "o2", CustomerID: "C1"}, {ID: "o1", CustomerID: "C1"}}

	out, err := svc.ListByCustomer(context.Background(), "C1", &Requester{UserID: "U1", Role: RoleCustomer})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListByCustomer_OtherCustomerForbidden(t *testing.T) {
	svc, repo, customers, _ := newTestService()
	customers.profiles["U1"] = &CustomerRef{ID: "C1"}
	repo.byCustomer["C2"] = []Order{{ID: "o1", CustomerID: "C2"}}

	out, err := svc.ListByCustomer(context.Background(), "C2", &Requester{UserID: "U1", Role: RoleCustomer})
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Nil(t, out, "no data may leak on a forbidden request")
}

func TestListByCustomer_NoProfileForbidden(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.ListByCustomer(context.Background(), "C1", &Requester{UserID: "ghost", Role: RoleCustomer})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListByCustomer_LookupFailurePropagates(t *testing.T) {
	svc, _, customers, _ := newTestService()
	customers.err = errors.New("customer service unavailable: connection refused")

	// Una caída del servicio de clientes no es una denegación: el error
	// debe subir intacto, nunca convertirse en ErrForbidden.
	_, err := svc.ListByCustomer(context.Background(), "C1", &Requester{UserID: "U1", Role: RoleCustomer})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.EqualError(t, err, "customer service unavailable: connection refused")
}

func TestListByCustomer_AdminBypassesLookup(t *testing.T) {
	svc, repo, customers, _ := newTestService()
	repo.byCustomer["C7"] = []Order{{ID: "o1", CustomerID: "C7"}}

	out, err := svc.ListByCustomer(context.Background(), "C7", &Requester{UserID: "admin-user", Role: RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Zero(t, customers.calls, "admin requests must not hit the customer lookup")
}

func TestListByCustomer_NilRequesterBypasses(t *testing.T) {
	svc, repo, customers, _ := newTestService()
	repo.byCustomer["C7"] = []Order{{ID: "o1", CustomerID: "C7"}}

	out, err := svc.ListByCustomer(context.Background(), "C7", nil)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Zero(t, customers.calls)
}

//
// ---------- reads ----------
//

func TestGet_NotFoundCarriesID(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nope", nf.ID)
}
