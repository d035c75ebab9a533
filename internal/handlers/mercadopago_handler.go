package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httpresp"
	ucpago "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/usecase/pago"
)

// La pasarela externa recibe más margen que la base.
const gatewayTimeout = 10 * time.Second

type MercadoPagoHandler struct {
	crearLinkUC *ucpago.CrearLinkPago
}

func NewMercadoPagoHandler(crearLinkUC *ucpago.CrearLinkPago) *MercadoPagoHandler {
	return &MercadoPagoHandler{crearLinkUC: crearLinkUC}
}

type CrearQRRequest struct {
	Titulo  string  `json:"titulo"`
	Monto   float64 `json:"monto" binding:"required,gt=0"`
	Cliente string  `json:"cliente" binding:"required"`
	IDPago  *uint   `json:"idPago"`
}

type CrearQRResponse struct {
	QRUrl string `json:"qr_url"`
}

func (h *MercadoPagoHandler) CrearQR(c *gin.Context) {
	var req CrearQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
	defer cancel()

	url, err := h.crearLinkUC.Execute(ctx, ucpago.LinkInput{
		Titulo:  req.Titulo,
		Monto:   req.Monto,
		Cliente: req.Cliente,
		IDPago:  req.IDPago,
	})
	if err != nil {
		// El binding gt=0 ya filtra montos no positivos en HTTP; esta
		// rama mapea el chequeo propio del caso de uso.
		if httperr.IsBusiness(err, "monto_invalido") {
			httperr.BadRequest(c, "monto_invalido", "El monto debe ser un número positivo")
			return
		}
		log.Println("[mercadopago] error creando QR de pago:", err)
		httperr.Internal(c, "failed_to_create_qr", err.Error())
		return
	}

	httpresp.OK(c, CrearQRResponse{QRUrl: url})
}
