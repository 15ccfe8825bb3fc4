package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CustomerLookup resolves the customer profile belonging to an
// authenticated user.
type CustomerLookup interface {
	FindByUserID(ctx context.Context, userID string) (*CustomerRef, error)
}

// ProductLookup resolves a catalog product; Price is the current price
// used to snapshot line items at creation time.
type ProductLookup interface {
	FindOne(ctx context.Context, productID string) (*ProductRef, error)
}

// Ext talks HTTP/JSON to the customer and product services.
type Ext struct {
	HTTP            *http.Client
	CustomerBaseURL string
	ProductBaseURL  string
}

func NewExt(customerBaseURL, productBaseURL string) *Ext {
	return &Ext{
		HTTP:            &http.Client{Timeout: 5 * time.Second},
		CustomerBaseURL: customerBaseURL,
		ProductBaseURL:  productBaseURL,
	}
}

func (e *Ext) FindByUserID(ctx context.Context, userID string) (*CustomerRef, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/customers/by-user/%s", e.CustomerBaseURL, userID), nil)
	res, err := e.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, notFound("customer profile", userID)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("customer lookup: %s", res.Status)
	}
	var c CustomerRef
	if err := json.NewDecoder(res.Body).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (e *Ext) FindOne(ctx context.Context, productID string) (*ProductRef, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%s", e.ProductBaseURL, productID), nil)
	res, err := e.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, notFound("product", productID)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup: %s", res.Status)
	}
	var p ProductRef
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
