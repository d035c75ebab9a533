package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/inmobiliaria-uufh/inmobiliaria-api/internal/domain/pago"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/models"
)

type PagoGormRepository struct {
	db *gorm.DB
}

func NewPagoGormRepository(db *gorm.DB) *PagoGormRepository {
	return &PagoGormRepository{db: db}
}

// --------------------------------------------------
// Pagos
// --------------------------------------------------

func (r *PagoGormRepository) List(ctx context.Context) ([]domain.RegistroPago, error) {
	rows := make([]domain.RegistroPago, 0)

	err := r.db.WithContext(ctx).
		Model(&models.Pago{}).
		Select("pagos.*, clientes.nombre AS cliente_nombre, propiedades.direccion AS propiedad_direccion").
		Joins("LEFT JOIN clientes ON clientes.id = pagos.cliente_id").
		Joins("LEFT JOIN propiedades ON propiedades.id = pagos.propiedad_id").
		Order("pagos.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PagoGormRepository) Create(ctx context.Context, p *models.Pago) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PagoGormRepository) Update(ctx context.Context, p *models.Pago) (int64, error) {
	// Sobrescritura completa: el map incluye también los nil, para que
	// los campos opcionales omitidos queden en NULL.
	res := r.db.WithContext(ctx).
		Model(&models.Pago{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"cliente_id":       p.ClienteID,
			"propiedad_id":     p.PropiedadID,
			"monto":            p.Monto,
			"estado":           p.Estado,
			"fechavencimiento": p.FechaVencimiento,
			"fechapago":        p.FechaPago,
		})
	return res.RowsAffected, res.Error
}

func (r *PagoGormRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Pago{}, id)
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Referencias
// --------------------------------------------------

func (r *PagoGormRepository) FindClienteByNombre(
	ctx context.Context,
	nombre string,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&cliente).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *PagoGormRepository) FindPropiedadByDireccion(
	ctx context.Context,
	direccion string,
) (*models.Propiedad, error) {

	var propiedad models.Propiedad
	if err := r.db.WithContext(ctx).
		Where("direccion = ?", direccion).
		First(&propiedad).Error; err != nil {
		return nil, err
	}
	return &propiedad, nil
}
