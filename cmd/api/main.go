package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/config"
	dbpkg "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/db"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/infra/gateway"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/middleware"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/routes"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/validators"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	mpGateway, err := gateway.NewMercadoPagoGateway(cfg.MPAccessToken)
	if err != nil {
		log.Fatalf("failed to init MercadoPago client: %v", err)
	}

	validators.Register()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg))

	routes.RegisterRoutes(r, db, cfg, mpGateway)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}

	dbpkg.Close(db)
	log.Println("Server stopped")
}
