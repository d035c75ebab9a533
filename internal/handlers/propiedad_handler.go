package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httpresp"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

type PropiedadHandler struct {
	db *gorm.DB
}

func NewPropiedadHandler(db *gorm.DB) *PropiedadHandler {
	return &PropiedadHandler{db: db}
}

// --------- Requests ---------

// Disponible es puntero para que `false` pase el required.
type PropiedadRequest struct {
	Direccion  string  `json:"direccion" binding:"required"`
	Precio     float64 `json:"precio" binding:"required,gt=0"`
	Disponible *bool   `json:"disponible" binding:"required"`
	FotoURL    *string `json:"foto_url"`
}

// --------- Handlers ---------

func (h *PropiedadHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	propiedades := make([]models.Propiedad, 0)
	if err := h.db.WithContext(ctx).
		Order("id ASC").
		Find(&propiedades).Error; err != nil {

		log.Println("[propiedades] error listando:", err)
		httperr.Internal(c, "failed_to_list_propiedades", "Error al obtener propiedades")
		return
	}

	c.JSON(http.StatusOK, propiedades)
}

func (h *PropiedadHandler) Create(c *gin.Context) {
	var req PropiedadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	propiedad := models.Propiedad{
		Direccion:  req.Direccion,
		Precio:     req.Precio,
		Disponible: *req.Disponible,
		FotoURL:    req.FotoURL,
	}

	if err := h.db.WithContext(ctx).Create(&propiedad).Error; err != nil {
		log.Println("[propiedades] error creando:", err)
		httperr.Internal(c, "failed_to_create_propiedad", "Error creando propiedad")
		return
	}

	httpresp.OK(c, propiedad)
}

func (h *PropiedadHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico")
		return
	}

	var req PropiedadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	// Sin probe previo: el not-found se infiere de cero filas afectadas.
	// Select fuerza la escritura de todas las columnas, incluidos nil
	// y zero values, para el reemplazo completo.
	res := h.db.WithContext(ctx).
		Model(&models.Propiedad{}).
		Where("id = ?", id).
		Select("direccion", "precio", "disponible", "foto_url").
		Updates(models.Propiedad{
			Direccion:  req.Direccion,
			Precio:     req.Precio,
			Disponible: *req.Disponible,
			FotoURL:    req.FotoURL,
		})
	if res.Error != nil {
		log.Println("[propiedades] error actualizando:", res.Error)
		httperr.Internal(c, "failed_to_update_propiedad", "Error actualizando propiedad")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "propiedad_not_found", "Propiedad no encontrada")
		return
	}

	var propiedad models.Propiedad
	if err := h.db.WithContext(ctx).First(&propiedad, id).Error; err != nil {
		log.Println("[propiedades] error releyendo:", err)
		httperr.Internal(c, "failed_to_get_propiedad", "Error actualizando propiedad")
		return
	}

	httpresp.OK(c, propiedad)
}

func (h *PropiedadHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	res := h.db.WithContext(ctx).Delete(&models.Propiedad{}, id)
	if res.Error != nil {
		log.Println("[propiedades] error eliminando:", res.Error)
		httperr.Internal(c, "failed_to_delete_propiedad", "Error eliminando propiedad")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "propiedad_not_found", "Propiedad no encontrada")
		return
	}

	httpresp.Ack(c, "Propiedad eliminada correctamente")
}
