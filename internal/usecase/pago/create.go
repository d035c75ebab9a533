package pago

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

// PagoInput es el pago ya validado y con las fechas parseadas, todavía
// con las referencias por nombre sin resolver.
type PagoInput struct {
	Cliente          string
	Propiedad        string
	Monto            float64
	Estado           string
	FechaVencimiento *time.Time
	FechaPago        *time.Time
}

type CreatePago struct {
	repo domain.Repository
}

func NewCreatePago(repo domain.Repository) *CreatePago {
	return &CreatePago{repo: repo}
}

func (uc *CreatePago) Execute(
	ctx context.Context,
	in PagoInput,
) (*domain.RegistroPago, error) {

	// Solo la fila ausente es un error de referencia; una falla del
	// store se propaga tal cual.
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
		ClienteID:        cliente.ID,
		PropiedadID:      propiedad.ID,
		Monto:            in.Monto,
		Estado:           in.Estado,
		FechaVencimiento: in.FechaVencimiento,
		FechaPago:        in.FechaPago,
	}

	if err := uc.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	return &domain.RegistroPago{
		Pago:               p,
		ClienteNombre:      cliente.Nombre,
		PropiedadDireccion: propiedad.Direccion,
	}, nil
}
