package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/pedidos-ecom/internal/config"
	cust "github.com/MikeMC777/pedidos-ecom/internal/customer"
	"github.com/MikeMC777/pedidos-ecom/internal/httpx"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("pgx pool: %v", err)
	}
	defer pool.Close()

	repo := cust.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.POST("/customers", createCustomerHandler(repo))
	r.GET("/customers/:id", getCustomerHandler(repo))
	r.GET("/customers/by-user/:user_id", getCustomerByUserHandler(repo))
	r.PUT("/customers/:id", updateCustomerHandler(repo))
	r.DELETE("/customers/:id", deleteCustomerHandler(repo))

	log.Printf("customer-service listening on %s", cfg.CustomerSvcAddr)
	log.Fatal(r.Run(cfg.CustomerSvcAddr))
}
