package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/config"
	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/handlers"
	infraRepo "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/infra/repository"
	ucpago "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/usecase/pago"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mpGateway domain.LinkGateway) {

	// ======================================================
	// INFRA
	// ======================================================
	pagoRepo := infraRepo.NewPagoGormRepository(db)

	// ======================================================
	// USE CASES — PAGOS
	// ======================================================
	createPagoUC := ucpago.NewCreatePago(pagoRepo)
	updatePagoUC := ucpago.NewUpdatePago(pagoRepo)
	crearLinkUC := ucpago.NewCrearLinkPago(mpGateway)

	// ======================================================
	// HANDLERS
	// ======================================================
	clienteHandler := handlers.NewClienteHandler(db)
	propiedadHandler := handlers.NewPropiedadHandler(db)
	pagoHandler := handlers.NewPagoHandler(pagoRepo, createPagoUC, updatePagoUC)
	mercadoPagoHandler := handlers.NewMercadoPagoHandler(crearLinkUC)

	// ======================================================
	// RUTAS
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API conectada y funcionando correctamente")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/clientes", clienteHandler.List)
	r.POST("/clientes", clienteHandler.Create)
	r.PUT("/clientes/:id", clienteHandler.Update)
	r.DELETE("/clientes/:id", clienteHandler.Delete)

	r.GET("/propiedades", propiedadHandler.List)
	r.POST("/propiedades", propiedadHandler.Create)
	r.PUT("/propiedades/:id", propiedadHandler.Update)
	r.DELETE("/propiedades/:id", propiedadHandler.Delete)

	r.GET("/pagos", pagoHandler.List)
	r.POST("/pagos", pagoHandler.Create)
	r.PUT("/pagos/:id", pagoHandler.Update)
	r.DELETE("/pagos/:id", pagoHandler.Delete)

	r.POST("/mercadopago/crear-qr", mercadoPagoHandler.CrearQR)
}
