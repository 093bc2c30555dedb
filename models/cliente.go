package models

import "time"

// Cliente representa un socio del gimnasio.
// PlanID es opcional: un cliente puede existir sin plan asignado.
type Cliente struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nombre        string     `gorm:"not null" json:"nombre" validate:"required"`
	Email         string     `gorm:"not null;unique" json:"email" validate:"required,email"`
	Telefono      string     `json:"telefono"`
	FechaRegistro time.Time  `gorm:"type:date" json:"fecha_registro"`
	PlanID        *int64     `gorm:"index" json:"plan_id"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (Cliente) TableName() string {
	return "clientes"
}
