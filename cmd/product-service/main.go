package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/pedidos-ecom/internal/config"
	"github.com/MikeMC777/pedidos-ecom/internal/httpx"
	prod "github.com/MikeMC777/pedidos-ecom/internal/product"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("pgx pool: %v", err)
	}
	defer pool.Close()

	repo := prod.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/products", listOnlyHandler(repo))
	r.GET("/products/search", searchHandler(repo))
	r.GET("/products/:id", getProductHandler(repo))
	r.POST("/products", createProductHandler(repo))
	r.PUT("/products/:id", updateProductHandler(repo))
	r.DELETE("/products/:id", deleteProductHandler(repo))

	log.Printf("product-service listening on %s", cfg.ProductSvcAddr)
	log.Fatal(r.Run(cfg.ProductSvcAddr))
}
