package models

import "time"

// Entrenador representa un entrenador del gimnasio.
type Entrenador struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nombre       string     `gorm:"not null" json:"nombre" validate:"required"`
	Especialidad string     `json:"especialidad"`
	Telefono     string     `json:"telefono"`
	Email        string     `gorm:"not null;unique" json:"email" validate:"required,email"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (Entrenador) TableName() string {
	return "entrenadores"
}
