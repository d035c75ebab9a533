package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	infraRepo "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/infra/repository"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
	ucpago "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/usecase/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/validators"
)

var registerValidatorsOnce sync.Once

// fakeLinkGateway implementa domain.LinkGateway para los tests.
type fakeLinkGateway struct {
	CrearLinkFunc func(ctx context.Context, pref domain.Preferencia) (string, error)
}

func (f *fakeLinkGateway) CrearLink(ctx context.Context, pref domain.Preferencia) (string, error) {
	if f.CrearLinkFunc != nil {
		return f.CrearLinkFunc(ctx, pref)
	}
	return "https://www.mercadopago.com.ar/init/test", nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// Con :memory: cada conexión del pool sería una base distinta.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Propiedad{},
		&models.Pago{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newTestRouter(t *testing.T, db *gorm.DB, gw domain.LinkGateway) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	registerValidatorsOnce.Do(validators.Register)

	if gw == nil {
		gw = &fakeLinkGateway{}
	}

	pagoRepo := infraRepo.NewPagoGormRepository(db)

	clienteHandler := NewClienteHandler(db)
	propiedadHandler := NewPropiedadHandler(db)
	pagoHandler := NewPagoHandler(
		pagoRepo,
		ucpago.NewCreatePago(pagoRepo),
		ucpago.NewUpdatePago(pagoRepo),
	)
	mercadoPagoHandler := NewMercadoPagoHandler(ucpago.NewCrearLinkPago(gw))

	r := gin.New()
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

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}

func seedCliente(t *testing.T, db *gorm.DB, nombre string) models.Cliente {
	t.Helper()
	cliente := models.Cliente{
		Nombre:   nombre,
		Email:    "test@example.com",
		Telefono: "1155550000",
		Estado:   "activo",
	}
	if err := db.Create(&cliente).Error; err != nil {
		t.Fatalf("failed to seed cliente: %v", err)
	}
	return cliente
}

func seedPropiedad(t *testing.T, db *gorm.DB, direccion string) models.Propiedad {
	t.Helper()
	propiedad := models.Propiedad{
		Direccion:  direccion,
		Precio:     250000,
		Disponible: true,
	}
	if err := db.Create(&propiedad).Error; err != nil {
		t.Fatalf("failed to seed propiedad: %v", err)
	}
	return propiedad
}
