package services

import (
	"gimnasio/models"

	"github.com/jinzhu/gorm"
)

// CreateClase da de alta una clase.
func CreateClase(database *gorm.DB, clase *models.Clase) error {
	if err := validate.Struct(clase); err != nil {
		return err
	}
	return database.Create(clase).Error
}

// GetClase busca una clase por ID.
func GetClase(database *gorm.DB, id int64) (models.Clase, error) {
	var clase models.Clase
	err := database.First(&clase, id).Error
	return clase, err
}

// GetClases lista todas las clases, ordenadas por ID.
func GetClases(database *gorm.DB) ([]models.Clase, error) {
	var clases []models.Clase
	err := database.Order("id asc").Find(&clases).Error
	return clases, err
}

// GetClasesPorEntrenador lista las clases de un entrenador.
func GetClasesPorEntrenador(database *gorm.DB, entrenadorID int64) ([]models.Clase, error) {
	var clases []models.Clase
	err := database.Where("entrenador_id = ?", entrenadorID).Order("id asc").Find(&clases).Error
	return clases, err
}

// UpdateClase pisa los campos no vacíos de la clase existente.
func UpdateClase(database *gorm.DB, id int64, cambios models.Clase) (models.Clase, error) {
	var clase models.Clase
	if err := database.First(&clase, id).Error; err != nil {
		return clase, err
	}

	if cambios.Nombre != "" {
		clase.Nombre = cambios.Nombre
	}
	if cambios.Horario != "" {
		clase.Horario = cambios.Horario
	}
	if cambios.EntrenadorID != nil {
		clase.EntrenadorID = cambios.EntrenadorID
	}

	if err := validate.Struct(&clase); err != nil {
		return clase, err
	}
	err := database.Save(&clase).Error
	return clase, err
}

// DeleteClase borra la clase y, en cascada, sus asistencias. Todo en una
// transacción; el log de asistencias queda intacto.
func DeleteClase(database *gorm.DB, id int64) error {
	var clase models.Clase
	if err := database.First(&clase, id).Error; err != nil {
		return err
	}

	tx := database.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Delete(&models.Asistencia{}, "clase_id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&clase).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
