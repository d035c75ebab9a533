package pago

import (
	"context"
	"testing"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
)

func TestCrearLinkTituloPorDefecto(t *testing.T) {
	var recibido domain.Preferencia
	gw := &mockGateway{
		CrearLinkFunc: func(ctx context.Context, pref domain.Preferencia) (string, error) {
			recibido = pref
			return "https://mp.example/init", nil
		},
	}

	uc := NewCrearLinkPago(gw)
	url, err := uc.Execute(context.Background(), LinkInput{
		Monto:   150000,
		Cliente: "Juan Pérez",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if url == "" {
		t.Error("url vacía")
	}
	if recibido.Titulo != "Pago de Juan Pérez" {
		t.Errorf("titulo = %q, want Pago de Juan Pérez", recibido.Titulo)
	}
}

func TestCrearLinkMontoNoPositivo(t *testing.T) {
	uc := NewCrearLinkPago(&mockGateway{})

	for _, monto := range []float64{0, -1} {
		_, err := uc.Execute(context.Background(), LinkInput{
			Monto:   monto,
			Cliente: "Juan Pérez",
		})
		if !httperr.IsBusiness(err, "monto_invalido") {
			t.Errorf("monto %v: err = %v, want monto_invalido", monto, err)
		}
	}
}
