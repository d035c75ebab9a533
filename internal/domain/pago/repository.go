package pago

import (
	"context"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

// RegistroPago es la fila de pago junto a los nombres resueltos de sus
// referencias, listos para el contrato HTTP.
type RegistroPago struct {
	models.Pago
	ClienteNombre      string
	PropiedadDireccion string
}

type Repository interface {
	List(ctx context.Context) ([]RegistroPago, error)
	Create(ctx context.Context, p *models.Pago) error

	// Update sobrescribe todas las columnas del pago y devuelve la
	// cantidad de filas afectadas (0 = id inexistente).
	Update(ctx context.Context, p *models.Pago) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)

	FindClienteByNombre(ctx context.Context, nombre string) (*models.Cliente, error)
	FindPropiedadByDireccion(ctx context.Context, direccion string) (*models.Propiedad, error)
}
