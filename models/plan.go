package models

import "time"

// Plan representa un plan de membresía (tipo, precio y duración en meses).
// DuracionMeses == 0 marca un plan expirado/inactivo: no cuenta para
// el listado de clientes activos.
type Plan struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Tipo          string     `gorm:"not null" json:"tipo" validate:"required"`
	Precio        float64    `gorm:"type:numeric(12,2);not null;default:0" json:"precio" validate:"gte=0"`
	DuracionMeses int        `gorm:"not null;default:0" json:"duracion_meses" validate:"gte=0"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "planes"
}
