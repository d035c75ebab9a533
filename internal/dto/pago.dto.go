package dto

import (
	"fmt"
	"time"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
)

const fechaLayout = "2006-01-02"

// PagoResponse es la forma del pago en el contrato HTTP: referencias por
// nombre y fechas en camelCase, independientes de las columnas
// fechavencimiento / fechapago del almacenamiento.
type PagoResponse struct {
	ID               uint    `json:"id"`
	Cliente          string  `json:"cliente"`
	Propiedad        string  `json:"propiedad"`
	Monto            float64 `json:"monto"`
	Estado           string  `json:"estado"`
	FechaVencimiento *string `json:"fechaVencimiento"`
	FechaPago        *string `json:"fechaPago"`
}

type PagoRequest struct {
	Cliente          string  `json:"cliente" binding:"required"`
	Propiedad        string  `json:"propiedad" binding:"required"`
	Monto            float64 `json:"monto" binding:"required,gt=0"`
	Estado           string  `json:"estado" binding:"required,estado_pago"`
	FechaVencimiento *string `json:"fechaVencimiento"`
	FechaPago        *string `json:"fechaPago"`
}

func NewPagoResponse(r domain.RegistroPago) PagoResponse {
	return PagoResponse{
		ID:               r.ID,
		Cliente:          r.ClienteNombre,
		Propiedad:        r.PropiedadDireccion,
		Monto:            r.Monto,
		Estado:           r.Estado,
		FechaVencimiento: FormatFecha(r.FechaVencimiento),
		FechaPago:        FormatFecha(r.FechaPago),
	}
}

// ParseFecha acepta fechas "2006-01-02" (o RFC3339, que el frontend manda
// al reeditar). Cadena vacía o nil equivalen a fecha nula.
func ParseFecha(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(fechaLayout, *s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q, expected %s", *s, fechaLayout)
}

func FormatFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(fechaLayout)
	return &s
}
