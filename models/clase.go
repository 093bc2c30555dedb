package models

import "time"

// Clase representa una clase del gimnasio con su horario (HH:MM).
// EntrenadorID es opcional: una clase puede quedar sin entrenador asignado.
type Clase struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nombre       string     `gorm:"not null" json:"nombre" validate:"required"`
	Horario      string     `json:"horario"`
	EntrenadorID *int64     `gorm:"index" json:"entrenador_id"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (Clase) TableName() string {
	return "clases"
}
