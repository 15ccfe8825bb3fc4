package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cust "github.com/MikeMC777/pedidos-ecom/internal/customer"
)

// createCustomerHandler godoc
// @Summary Create a customer profile
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body customer.CreateCustomerRequest true "profile payload"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} product.HTTPError
// @Failure 409 {object} product.HTTPError
// @Router /customers [post]
func createCustomerHandler(repo cust.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cust.CreateCustomerRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if in.UserID == "" || in.Name == "" || in.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, name and email are required"})
			return
		}
		profile := &cust.Customer{
			ID:     uuid.NewString(),
			UserID: in.UserID,
			Name:   in.Name,
			Email:  in.Email,
			Phone:  in.Phone,
		}
		if err := repo.Create(c.Request.Context(), profile); err != nil {
			if err == cust.ErrAlreadyExist {
				c.JSON(http.StatusConflict, gin.H{"error": "profile exists for user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, profile)
	}
}

// getCustomerHandler godoc
// @Summary Get a customer profile by id
// @Tags customers
// @Produce json
// @Param id path string true "customer id"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} product.HTTPError
// @Router /customers/{id} [get]
func getCustomerHandler(repo cust.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// getCustomerByUserHandler godoc
// @Summary Get the profile linked to an auth user
// @Tags customers
// @Produce json
// @Param user_id path string true "auth user id"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} product.HTTPError
// @Router /customers/by-user/{user_id} [get]
func getCustomerByUserHandler(repo cust.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := repo.GetByUserID(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// updateCustomerHandler godoc
// @Summary Partially update a customer profile
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "customer id"
// @Param customer body customer.UpdateCustomerRequest true "fields to update"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} product.HTTPError
// @Router /customers/{id} [put]
func updateCustomerHandler(repo cust.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cust.UpdateCustomerRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		id := c.Param("id")
		if _, err := repo.GetByID(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		profile := &cust.Customer{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone}
		if err := repo.Update(c.Request.Context(), profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteCustomerHandler godoc
// @Summary Delete a customer profile
// @Tags customers
// @Param id path string true "customer id"
// @Success 204
// @Failure 404 {object} product.HTTPError
// @Router /customers/{id} [delete]
func deleteCustomerHandler(repo cust.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
