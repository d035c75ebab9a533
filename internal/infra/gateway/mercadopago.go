package gateway

import (
	"context"
	"errors"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
)

const (
	currencyID = "ARS"
	backURL    = "https://www.mercadopago.com.ar"
)

// ErrSinInitPoint: la preferencia se creó pero no trae ninguna URL usable.
// Se reporta como falla en vez de devolver un link muerto.
var ErrSinInitPoint = errors.New("mercadopago preference returned no init point")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type MercadoPagoGateway struct {
	prefs preferenceCreator
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{prefs: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CrearLink(ctx context.Context, pref domain.Preferencia) (string, error) {
	item := preference.ItemRequest{
		Title:      pref.Titulo,
		Quantity:   1,
		UnitPrice:  pref.Monto,
		CurrencyID: currencyID,
	}

	req := preference.Request{
		Items: []preference.ItemRequest{item},
		Payer: &preference.PayerRequest{Name: pref.Cliente},
		BackURLs: &preference.BackURLsRequest{
			Success: backURL,
			Failure: backURL,
		},
		AutoReturn: "approved",
	}

	if pref.IDPago != nil {
		req.Items[0].ID = strconv.FormatUint(uint64(*pref.IDPago), 10)
		req.Metadata = map[string]any{"id_pago": *pref.IDPago}
	}

	res, err := g.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	if res.InitPoint != "" {
		return res.InitPoint, nil
	}
	if res.SandboxInitPoint != "" {
		return res.SandboxInitPoint, nil
	}
	return "", ErrSinInitPoint
}
