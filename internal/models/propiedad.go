package models

import "time"

type Propiedad struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Direccion  string  `gorm:"size:200;not null" json:"direccion"`
	Precio     float64 `gorm:"type:numeric(12,2);not null" json:"precio"`
	Disponible bool    `gorm:"not null;default:true" json:"disponible"`
	FotoURL    *string `gorm:"size:500" json:"foto_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// El pluralizador por defecto generaría "propiedads".
func (Propiedad) TableName() string {
	return "propiedades"
}
