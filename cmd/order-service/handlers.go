package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ord "github.com/MikeMC777/pedidos-ecom/internal/order"
)

// requesterFrom builds the authorization context from the identity
// headers set by the gateway. No headers means an internal caller.
func requesterFrom(c *gin.Context) *ord.Requester {
	uid := c.GetHeader("X-User-ID")
	if uid == "" {
		return nil
	}
	return &ord.Requester{UserID: uid, Role: ord.Role(c.GetHeader("X-User-Role"))}
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ord.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ord.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ord.ErrNoItems), errors.Is(err, ord.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// createOrderHandler godoc
// @Summary Create an order priced against the current catalog
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.CreateOrderRequest true "order payload"
// @Success 201 {object} order.Order
// @Failure 400 {object} product.HTTPError
// @Failure 404 {object} product.HTTPError
// @Router /orders [post]
func createOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		o, err := svc.Create(c.Request.Context(), &in, c.GetHeader("X-User-ID"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// createFromCartHandler godoc
// @Summary Checkout the caller's cart as a new order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.CreateOrderRequest true "cart payload"
// @Success 201 {object} order.Order
// @Router /orders/from-cart [post]
func createFromCartHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		o, err := svc.CreateFromCart(c.Request.Context(), &in, c.GetHeader("X-User-ID"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// listOrdersHandler godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders [get]
func listOrdersHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// getOrderHandler godoc
// @Summary Get one order by id
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} order.Order
// @Failure 404 {object} product.HTTPError
// @Router /orders/{id} [get]
func getOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderHandler godoc
// @Summary Patch order fields (no re-pricing)
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param patch body order.UpdateOrderRequest true "partial patch"
// @Success 200 {object} order.Order
// @Failure 400 {object} product.HTTPError
// @Failure 404 {object} product.HTTPError
// @Router /orders/{id} [put]
func updateOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch ord.UpdateOrderRequest
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		o, err := svc.Update(c.Request.Context(), c.Param("id"), &patch)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// deleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Param id path string true "order id"
// @Success 204
// @Failure 404 {object} product.HTTPError
// @Router /orders/{id} [delete]
func deleteOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// listOrdersByCustomerHandler godoc
// @Summary List a customer's orders, newest first
// @Tags orders
// @Produce json
// @Param customer_id path string true "customer id"
// @Success 200 {array} order.Order
// @Failure 403 {object} product.HTTPError
// @Router /customers/{customer_id}/orders [get]
func listOrdersByCustomerHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListByCustomer(c.Request.Context(), c.Param("customer_id"), requesterFrom(c))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}
