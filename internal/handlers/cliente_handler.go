package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httpresp"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

// Presupuesto de cada operación contra la base. Las requests no quedan
// colgadas esperando un pool saturado.
const dbTimeout = 5 * time.Second

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

// --------- Requests ---------

type ClienteRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Telefono    string `json:"telefono" binding:"required"`
	Propiedades int    `json:"propiedades" binding:"min=0"`
	Estado      string `json:"estado" binding:"required,estado_cliente"`
}

// --------- Handlers ---------

func (h *ClienteHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	clientes := make([]models.Cliente, 0)
	if err := h.db.WithContext(ctx).
		Order("id ASC").
		Find(&clientes).Error; err != nil {

		log.Println("[clientes] error listando:", err)
		httperr.Internal(c, "failed_to_list_clientes", "Error al obtener clientes")
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	cliente := models.Cliente{
		Nombre:      req.Nombre,
		Email:       req.Email,
		Telefono:    req.Telefono,
		Propiedades: req.Propiedades,
		Estado:      req.Estado,
	}

	if err := h.db.WithContext(ctx).Create(&cliente).Error; err != nil {
		log.Println("[clientes] error creando:", err)
		httperr.Internal(c, "failed_to_create_cliente", "Error creando cliente")
		return
	}

	httpresp.OK(c, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	// Se verifica la existencia antes de escribir.
	var cliente models.Cliente
	if err := h.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "cliente_not_found", "Cliente no encontrado en la base de datos")
			return
		}
		log.Println("[clientes] error buscando:", err)
		httperr.Internal(c, "failed_to_get_cliente", "Error interno al actualizar el cliente")
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud: "+err.Error())
		return
	}

	// Reemplazo completo: Save escribe todas las columnas.
	cliente.Nombre = req.Nombre
	cliente.Email = req.Email
	cliente.Telefono = req.Telefono
	cliente.Propiedades = req.Propiedades
	cliente.Estado = req.Estado

	if err := h.db.WithContext(ctx).Save(&cliente).Error; err != nil {
		log.Println("[clientes] error actualizando:", err)
		httperr.Internal(c, "failed_to_update_cliente", "Error interno al actualizar el cliente")
		return
	}

	httpresp.OK(c, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	res := h.db.WithContext(ctx).Delete(&models.Cliente{}, id)
	if res.Error != nil {
		log.Println("[clientes] error eliminando:", res.Error)
		httperr.Internal(c, "failed_to_delete_cliente", "Error eliminando cliente")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "cliente_not_found", "Cliente no encontrado")
		return
	}

	httpresp.Ack(c, "Cliente eliminado correctamente")
}
