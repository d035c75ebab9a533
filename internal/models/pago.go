package models

import "time"

// Pago de alquiler. Referencia cliente y propiedad por id; los nombres
// que viajan en el contrato HTTP se resuelven con un join al listar.
// Las columnas de fechas conservan los nombres históricos en minúscula
// (fechavencimiento / fechapago) por compatibilidad con la base existente.
type Pago struct {
	ID uint `gorm:"primaryKey"`

	ClienteID   uint `gorm:"not null;index"`
	PropiedadID uint `gorm:"not null;index"`

	Monto  float64 `gorm:"type:numeric(12,2);not null"`
	Estado string  `gorm:"size:20;not null"`

	FechaVencimiento *time.Time `gorm:"column:fechavencimiento"`
	FechaPago        *time.Time `gorm:"column:fechapago"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Pago) TableName() string {
	return "pagos"
}
