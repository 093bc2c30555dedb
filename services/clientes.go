package services

import (
	"gimnasio/models"
	"gimnasio/tools"

	"github.com/jinzhu/gorm"
)

// CreateCliente da de alta un cliente. Valida nombre y formato de email
// antes de insertar; el unique de email lo reporta el driver tal cual.
// FechaRegistro en cero se completa con la fecha de hoy.
func CreateCliente(database *gorm.DB, cliente *models.Cliente) error {
	if err := validate.Struct(cliente); err != nil {
		return err
	}
	if cliente.FechaRegistro.IsZero() {
		cliente.FechaRegistro = tools.Hoy()
	}
	return database.Create(cliente).Error
}

// GetCliente busca un cliente por ID.
func GetCliente(database *gorm.DB, id int64) (models.Cliente, error) {
	var cliente models.Cliente
	err := database.First(&cliente, id).Error
	return cliente, err
}

// GetClientes lista todos los clientes, ordenados por ID.
func GetClientes(database *gorm.DB) ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := database.Order("id asc").Find(&clientes).Error
	return clientes, err
}

// GetClientesPorPlan lista los clientes de un plan.
func GetClientesPorPlan(database *gorm.DB, planID int64) ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := database.Where("plan_id = ?", planID).Order("id asc").Find(&clientes).Error
	return clientes, err
}

// UpdateCliente pisa los campos no vacíos del cliente existente. El caso
// típico es el cambio de plan (PlanID).
func UpdateCliente(database *gorm.DB, id int64, cambios models.Cliente) (models.Cliente, error) {
	var cliente models.Cliente
	if err := database.First(&cliente, id).Error; err != nil {
		return cliente, err
	}

	if cambios.Nombre != "" {
		cliente.Nombre = cambios.Nombre
	}
	if cambios.Email != "" {
		cliente.Email = cambios.Email
	}
	if cambios.Telefono != "" {
		cliente.Telefono = cambios.Telefono
	}
	if cambios.PlanID != nil {
		cliente.PlanID = cambios.PlanID
	}

	if err := validate.Struct(&cliente); err != nil {
		return cliente, err
	}
	err := database.Save(&cliente).Error
	return cliente, err
}

// DeleteCliente borra el cliente y, en cascada, sus asistencias y pagos.
// Todo en una transacción; el log de asistencias queda intacto.
func DeleteCliente(database *gorm.DB, id int64) error {
	var cliente models.Cliente
	if err := database.First(&cliente, id).Error; err != nil {
		return err
	}

	tx := database.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Delete(&models.Asistencia{}, "cliente_id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Pago{}, "cliente_id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&cliente).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
