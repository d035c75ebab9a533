package models

import "time"

// Cliente de la inmobiliaria. "Propiedades" es un contador desnormalizado
// que mantiene el frontend; no se deriva de la tabla de propiedades.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre      string `gorm:"size:100;not null" json:"nombre"`
	Email       string `gorm:"size:100;not null" json:"email"`
	Telefono    string `gorm:"size:30;not null" json:"telefono"`
	Propiedades int    `gorm:"not null;default:0" json:"propiedades"`
	Estado      string `gorm:"size:20;not null" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string {
	return "clientes"
}
