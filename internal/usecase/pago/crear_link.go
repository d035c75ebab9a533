package pago

import (
	"context"
	"fmt"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
)

type LinkInput struct {
	Titulo  string
	Monto   float64
	Cliente string
	IDPago  *uint
}

type CrearLinkPago struct {
	gateway domain.LinkGateway
}

func NewCrearLinkPago(gateway domain.LinkGateway) *CrearLinkPago {
	return &CrearLinkPago{gateway: gateway}
}

func (uc *CrearLinkPago) Execute(ctx context.Context, in LinkInput) (string, error) {
	if in.Monto <= 0 {
		return "", httperr.ErrBusiness("monto_invalido")
	}

	titulo := in.Titulo
	if titulo == "" {
		titulo = fmt.Sprintf("Pago de %s", in.Cliente)
	}

	return uc.gateway.CrearLink(ctx, domain.Preferencia{
		Titulo:  titulo,
		Monto:   in.Monto,
		Cliente: in.Cliente,
		IDPago:  in.IDPago,
	})
}
