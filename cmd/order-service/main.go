// @title Pedidos API - order service
// @version 1.0
// @description Order management: cart checkout, catalog-priced line items and customer listings.
// @BasePath /
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/pedidos-ecom/docs"
	"github.com/MikeMC777/pedidos-ecom/internal/config"
	"github.com/MikeMC777/pedidos-ecom/internal/httpx"
	ord "github.com/MikeMC777/pedidos-ecom/internal/order"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("pgx pool: %v", err)
	}
	defer pool.Close()

	repo := ord.NewPGRepo(pool)
	ext := ord.NewExt(cfg.CustomerSvcBaseURL, cfg.ProductSvcBaseURL)
	svc := ord.NewService(repo, ext, ext)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.POST("/orders", createOrderHandler(svc))
	r.POST("/orders/from-cart", createFromCartHandler(svc))
	r.GET("/orders", listOrdersHandler(svc))
	r.GET("/orders/:id", getOrderHandler(svc))
	r.PUT("/orders/:id", updateOrderHandler(svc))
	r.DELETE("/orders/:id", deleteOrderHandler(svc))
	r.GET("/customers/:customer_id/orders", listOrdersByCustomerHandler(svc))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("order-service listening on %s", cfg.OrderSvcAddr)
	log.Fatal(r.Run(cfg.OrderSvcAddr))
}
