package models

import "time"

// MensajeNuevaAsistencia es el texto fijo que lleva cada entrada del log.
const MensajeNuevaAsistencia = "Nueva asistencia registrada"

// LogAsistencia es la traza de auditoría de asistencias. La genera el
// hook AfterCreate de Asistencia; nadie la escribe ni la borra a mano.
type LogAsistencia struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ClienteID int64     `gorm:"not null" json:"cliente_id"`
	ClaseID   int64     `gorm:"not null" json:"clase_id"`
	Fecha     time.Time `gorm:"type:date" json:"fecha"`
	FechaLog  time.Time `json:"fecha_log"`
	Mensaje   string    `gorm:"not null" json:"mensaje"`
}

func (LogAsistencia) TableName() string {
	return "log_asistencias"
}
