package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AckResponse struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Ack responde los DELETE: el contrato devuelve un mensaje, no la fila.
func Ack(c *gin.Context, message string) {
	c.JSON(http.StatusOK, AckResponse{Message: message})
}
