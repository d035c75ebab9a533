package pago

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

var errNotFound = gorm.ErrRecordNotFound

// mockRepository implementa domain.Repository con funciones intercambiables.
type mockRepository struct {
	ListFunc                     func(ctx context.Context) ([]domain.RegistroPago, error)
	CreateFunc                   func(ctx context.Context, p *models.Pago) error
	UpdateFunc                   func(ctx context.Context, p *models.Pago) (int64, error)
	DeleteFunc                   func(ctx context.Context, id uint) (int64, error)
	FindClienteByNombreFunc      func(ctx context.Context, nombre string) (*models.Cliente, error)
	FindPropiedadByDireccionFunc func(ctx context.Context, direccion string) (*models.Propiedad, error)
}

func (m *mockRepository) List(ctx context.Context) ([]domain.RegistroPago, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) Create(ctx context.Context, p *models.Pago) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	p.ID = 1
	return nil
}

func (m *mockRepository) Update(ctx context.Context, p *models.Pago) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return 1, nil
}

func (m *mockRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *mockRepository) FindClienteByNombre(ctx context.Context, nombre string) (*models.Cliente, error) {
	if m.FindClienteByNombreFunc != nil {
		return m.FindClienteByNombreFunc(ctx, nombre)
	}
	return &models.Cliente{ID: 10, Nombre: nombre}, nil
}

func (m *mockRepository) FindPropiedadByDireccion(ctx context.Context, direccion string) (*models.Propiedad, error) {
	if m.FindPropiedadByDireccionFunc != nil {
		return m.FindPropiedadByDireccionFunc(ctx, direccion)
	}
	return &models.Propiedad{ID: 20, Direccion: direccion}, nil
}

// mockGateway implementa domain.LinkGateway.
type mockGateway struct {
	CrearLinkFunc func(ctx context.Context, pref domain.Preferencia) (string, error)
}

func (m *mockGateway) CrearLink(ctx context.Context, pref domain.Preferencia) (string, error) {
	if m.CrearLinkFunc != nil {
		return m.CrearLinkFunc(ctx, pref)
	}
	return "https://mp.example/init", nil
}
