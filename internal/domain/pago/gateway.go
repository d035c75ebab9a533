package pago

import "context"

// Preferencia describe el checkout de un único ítem, cantidad 1,
// que se solicita a la pasarela de pagos.
type Preferencia struct {
	Titulo  string
	Monto   float64
	Cliente string
	IDPago  *uint
}

// LinkGateway crea un link de pago hosteado y devuelve su URL.
type LinkGateway interface {
	CrearLink(ctx context.Context, pref Preferencia) (string, error)
}
