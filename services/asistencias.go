package services

import (
	"time"

	"gimnasio/models"
	"gimnasio/tools"

	"github.com/jinzhu/gorm"
)

// RegistrarAsistencia es el camino oficial para anotar una asistencia:
// valida que el cliente y la clase existan antes de tocar nada, inserta
// dentro de una transacción y devuelve el ID nuevo. El log de auditoría
// lo agrega el hook AfterCreate del modelo, en la misma transacción.
//
// Si fecha viene en cero se usa la fecha de hoy.
// Se chequea primero el cliente: si faltan los dos, el error es
// ErrClienteNoEncontrado.
func RegistrarAsistencia(database *gorm.DB, clienteID, claseID int64, fecha time.Time) (int64, error) {
	if err := database.First(&models.Cliente{}, clienteID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return 0, ErrClienteNoEncontrado
		}
		return 0, err
	}
	if err := database.First(&models.Clase{}, claseID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return 0, ErrClaseNoEncontrada
		}
		return 0, err
	}

	if fecha.IsZero() {
		fecha = tools.Hoy()
	}

	asistencia := models.Asistencia{
		ClienteID: clienteID,
		ClaseID:   claseID,
		Fecha:     fecha,
	}

	tx := database.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	if err := tx.Create(&asistencia).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	return asistencia.ID, nil
}

// GetAsistencia busca una asistencia por ID.
func GetAsistencia(database *gorm.DB, id int64) (models.Asistencia, error) {
	var asistencia models.Asistencia
	err := database.First(&asistencia, id).Error
	return asistencia, err
}

// GetAsistencias lista todas las asistencias, ordenadas por ID.
func GetAsistencias(database *gorm.DB) ([]models.Asistencia, error) {
	var asistencias []models.Asistencia
	err := database.Order("id asc").Find(&asistencias).Error
	return asistencias, err
}

// GetAsistenciasPorCliente lista las asistencias de un cliente.
func GetAsistenciasPorCliente(database *gorm.DB, clienteID int64) ([]models.Asistencia, error) {
	var asistencias []models.Asistencia
	err := database.Where("cliente_id = ?", clienteID).Order("id asc").Find(&asistencias).Error
	return asistencias, err
}

// GetLogAsistencias lista el log de auditoría. Solo lectura: las entradas
// las escribe el hook del modelo.
func GetLogAsistencias(database *gorm.DB) ([]models.LogAsistencia, error) {
	var entradas []models.LogAsistencia
	err := database.Order("id asc").Find(&entradas).Error
	return entradas, err
}
