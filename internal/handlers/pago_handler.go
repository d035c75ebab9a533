package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/dto"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httpresp"
	ucpago "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/usecase/pago"
)

type PagoHandler struct {
	repo     domain.Repository
	createUC *ucpago.CreatePago
	updateUC *ucpago.UpdatePago
}

func NewPagoHandler(
	repo domain.Repository,
	createUC *ucpago.CreatePago,
	updateUC *ucpago.UpdatePago,
) *PagoHandler {
	return &PagoHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
	}
}

func (h *PagoHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	registros, err := h.repo.List(ctx)
	if err != nil {
		log.Println("[pagos] error listando:", err)
		httperr.Internal(c, "failed_to_list_pagos", "Error al obtener pagos")
		return
	}

	pagos := make([]dto.PagoResponse, 0, len(registros))
	for _, r := range registros {
		pagos = append(pagos, dto.NewPagoResponse(r))
	}

	c.JSON(http.StatusOK, pagos)
}

func (h *PagoHandler) Create(c *gin.Context) {
	in, ok := bindPagoInput(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	registro, err := h.createUC.Execute(ctx, in)
	if err != nil {
		writePagoError(c, err, "Error creando pago", "failed_to_create_pago")
		return
	}

	httpresp.OK(c, dto.NewPagoResponse(*registro))
}

func (h *PagoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico")
		return
	}

	in, ok := bindPagoInput(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	registro, err := h.updateUC.Execute(ctx, uint(id), in)
	if err != nil {
		writePagoError(c, err, "Error actualizando pago", "failed_to_update_pago")
		return
	}

	httpresp.OK(c, dto.NewPagoResponse(*registro))
}

func (h *PagoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	affected, err := h.repo.Delete(ctx, uint(id))
	if err != nil {
		log.Println("[pagos] error eliminando:", err)
		httperr.Internal(c, "failed_to_delete_pago", "Error eliminando pago")
		return
	}
	if affected == 0 {
		httperr.NotFound(c, "pago_not_found", "Pago no encontrado")
		return
	}

	httpresp.Ack(c, "Pago eliminado correctamente")
}

// bindPagoInput valida el payload y traduce las fechas del contrato
// (fechaVencimiento / fechaPago) al modelo. Escribe la respuesta de
// error y devuelve ok=false si algo falla.
func bindPagoInput(c *gin.Context) (ucpago.PagoInput, bool) {
	var req dto.PagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud: "+err.Error())
		return ucpago.PagoInput{}, false
	}

	vencimiento, err := dto.ParseFecha(req.FechaVencimiento)
	if err != nil {
		httperr.BadRequest(c, "invalid_fecha", "Fecha de vencimiento inválida, se espera AAAA-MM-DD")
		return ucpago.PagoInput{}, false
	}

	pagado, err := dto.ParseFecha(req.FechaPago)
	if err != nil {
		httperr.BadRequest(c, "invalid_fecha", "Fecha de pago inválida, se espera AAAA-MM-DD")
		return ucpago.PagoInput{}, false
	}

	return ucpago.PagoInput{
		Cliente:          req.Cliente,
		Propiedad:        req.Propiedad,
		Monto:            req.Monto,
		Estado:           req.Estado,
		FechaVencimiento: vencimiento,
		FechaPago:        pagado,
	}, true
}

func writePagoError(c *gin.Context, err error, genericMsg, genericCode string) {
	switch {
	case httperr.IsBusiness(err, "pago_not_found"):
		httperr.NotFound(c, "pago_not_found", "Pago no encontrado")
	case httperr.IsBusiness(err, "cliente_reference_not_found"):
		httperr.Unprocessable(c, "cliente_reference_not_found",
			"El cliente referenciado no existe")
	case httperr.IsBusiness(err, "propiedad_reference_not_found"):
		httperr.Unprocessable(c, "propiedad_reference_not_found",
			"La propiedad referenciada no existe")
	default:
		log.Println("[pagos] error:", err)
		httperr.Internal(c, genericCode, genericMsg)
	}
}
