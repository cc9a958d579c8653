package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justdogsza/dog-training-api/internal/billing"
	"github.com/justdogsza/dog-training-api/internal/config"
	dbpkg "github.com/justdogsza/dog-training-api/internal/db"
	"github.com/justdogsza/dog-training-api/internal/middleware"
	"github.com/justdogsza/dog-training-api/internal/notify"
	"github.com/justdogsza/dog-training-api/internal/routes"
	"github.com/justdogsza/dog-training-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hub := notify.NewHub(cfg.RedisURL)
	photos := storage.NewPhotoStore(cfg)

	var linker billing.PaymentLinker
	mp, err := billing.NewMercadoPago(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Fatalf("failed to configure payment provider: %v", err)
	}
	if mp != nil {
		linker = mp
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, hub, photos, linker)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
