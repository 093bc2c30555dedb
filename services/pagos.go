package services

import (
	"gimnasio/models"
	"gimnasio/tools"

	"github.com/jinzhu/gorm"
)

// CreatePago registra un pago de un cliente. El monto es libre (no se
// compara con el precio del plan). FechaPago en cero se completa con la
// fecha de hoy. No hay update ni delete: los pagos son append-only y
// solo desaparecen por la cascada del cliente.
func CreatePago(database *gorm.DB, pago *models.Pago) error {
	if err := validate.Struct(pago); err != nil {
		return err
	}
	if pago.FechaPago.IsZero() {
		pago.FechaPago = tools.Hoy()
	}
	return database.Create(pago).Error
}

// GetPago busca un pago por ID.
func GetPago(database *gorm.DB, id int64) (models.Pago, error) {
	var pago models.Pago
	err := database.First(&pago, id).Error
	return pago, err
}

// GetPagos lista todos los pagos, ordenados por ID.
func GetPagos(database *gorm.DB) ([]models.Pago, error) {
	var pagos []models.Pago
	err := database.Order("id asc").Find(&pagos).Error
	return pagos, err
}

// GetPagosPorCliente lista los pagos de un cliente.
func GetPagosPorCliente(database *gorm.DB, clienteID int64) ([]models.Pago, error) {
	var pagos []models.Pago
	err := database.Where("cliente_id = ?", clienteID).Order("id asc").Find(&pagos).Error
	return pagos, err
}
