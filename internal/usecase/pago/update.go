package pago

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

type UpdatePago struct {
	repo domain.Repository
}

func NewUpdatePago(repo domain.Repository) *UpdatePago {
	return &UpdatePago{repo: repo}
}

// Execute reemplaza todas las columnas del pago. Los opcionales que el
// cliente omite quedan en NULL: no hay semántica de patch parcial.
func (uc *UpdatePago) Execute(
	ctx context.Context,
	id uint,
	in PagoInput,
) (*domain.RegistroPago, error) {

	cliente, err := uc.repo.FindClienteByNombre(ctx, in.Cliente)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("cliente_reference_not_found")
		}
		return nil, err
	}

	propiedad, err := uc.repo.FindPropiedadByDireccion(ctx, in.Propiedad)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("propiedad_reference_not_found")
		}
		return nil, err
	}

	p := models.Pago{
		ID:               id,
		ClienteID:        cliente.ID,
		PropiedadID:      propiedad.ID,
		Monto:            in.Monto,
		Estado:           in.Estado,
		FechaVencimiento: in.FechaVencimiento,
		FechaPago:        in.FechaPago,
	}

	affected, err := uc.repo.Update(ctx, &p)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, httperr.ErrBusiness("pago_not_found")
	}

	return &domain.RegistroPago{
		Pago:               p,
		ClienteNombre:      cliente.Nombre,
		PropiedadDireccion: propiedad.Direccion,
	}, nil
}
