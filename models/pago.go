package models

import "time"

// Pago es un registro de pago de un cliente. Es append-only: el sistema
// nunca lo actualiza ni lo borra. El monto es libre, no se valida contra
// el precio del plan (datos históricos sin reconciliar).
type Pago struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ClienteID int64     `gorm:"not null;index" json:"cliente_id" validate:"required"`
	Monto     float64   `gorm:"type:numeric(12,2);not null" json:"monto" validate:"gte=0"`
	FechaPago time.Time `gorm:"column:fecha_pago;type:date" json:"fecha_pago"`
}

func (Pago) TableName() string {
	return "pagos"
}
