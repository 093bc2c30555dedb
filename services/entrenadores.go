package services

import (
	"gimnasio/models"

	"github.com/jinzhu/gorm"
)

// CreateEntrenador da de alta un entrenador. Valida nombre y formato de
// email; el unique de email lo reporta el driver.
func CreateEntrenador(database *gorm.DB, entrenador *models.Entrenador) error {
	if err := validate.Struct(entrenador); err != nil {
		return err
	}
	return database.Create(entrenador).Error
}

// GetEntrenador busca un entrenador por ID.
func GetEntrenador(database *gorm.DB, id int64) (models.Entrenador, error) {
	var entrenador models.Entrenador
	err := database.First(&entrenador, id).Error
	return entrenador, err
}

// GetEntrenadores lista todos los entrenadores, ordenados por ID.
func GetEntrenadores(database *gorm.DB) ([]models.Entrenador, error) {
	var entrenadores []models.Entrenador
	err := database.Order("id asc").Find(&entrenadores).Error
	return entrenadores, err
}

// UpdateEntrenador pisa los campos no vacíos del entrenador existente.
func UpdateEntrenador(database *gorm.DB, id int64, cambios models.Entrenador) (models.Entrenador, error) {
	var entrenador models.Entrenador
	if err := database.First(&entrenador, id).Error; err != nil {
		return entrenador, err
	}

	if cambios.Nombre != "" {
		entrenador.Nombre = cambios.Nombre
	}
	if cambios.Especialidad != "" {
		entrenador.Especialidad = cambios.Especialidad
	}
	if cambios.Telefono != "" {
		entrenador.Telefono = cambios.Telefono
	}
	if cambios.Email != "" {
		entrenador.Email = cambios.Email
	}

	if err := validate.Struct(&entrenador); err != nil {
		return entrenador, err
	}
	err := database.Save(&entrenador).Error
	return entrenador, err
}

// DeleteEntrenador borra un entrenador por ID. Si todavía tiene clases
// asignadas se corta con ErrEntrenadorEnUso, igual que el RESTRICT de
// postgres, para que sqlite no quede con referencias colgadas.
func DeleteEntrenador(database *gorm.DB, id int64) error {
	var entrenador models.Entrenador
	if err := database.First(&entrenador, id).Error; err != nil {
		return err
	}

	var enUso int64
	if err := database.Model(&models.Clase{}).Where("entrenador_id = ?", id).Count(&enUso).Error; err != nil {
		return err
	}
	if enUso > 0 {
		return ErrEntrenadorEnUso
	}

	return database.Delete(&entrenador).Error
}
