package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Asistencia registra que un cliente asistió a una clase en una fecha.
// Append-only: solo desaparece por cascada al borrar el cliente o la clase.
type Asistencia struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ClienteID int64     `gorm:"not null;index" json:"cliente_id" validate:"required"`
	ClaseID   int64     `gorm:"not null;index" json:"clase_id" validate:"required"`
	Fecha     time.Time `gorm:"type:date" json:"fecha"`
}

func (Asistencia) TableName() string {
	return "asistencias"
}

// AfterCreate deja la traza de auditoría. Va como hook del modelo para que
// ningún insert (ni siquiera un db.Create directo, sin pasar por
// services.RegistrarAsistencia) pueda saltarse el log. Corre dentro de la
// misma transacción que el insert: o quedan las dos filas o ninguna.
func (a *Asistencia) AfterCreate(tx *gorm.DB) error {
	entrada := LogAsistencia{
		ClienteID: a.ClienteID,
		ClaseID:   a.ClaseID,
		Fecha:     a.Fecha,
		FechaLog:  time.Now(),
		Mensaje:   MensajeNuevaAsistencia,
	}
	return tx.Create(&entrada).Error
}
