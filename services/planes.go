package services

import (
	"gimnasio/models"

	"github.com/jinzhu/gorm"
)

// CreatePlan da de alta un plan.
func CreatePlan(database *gorm.DB, plan *models.Plan) error {
	if err := validate.Struct(plan); err != nil {
		return err
	}
	return database.Create(plan).Error
}

// GetPlan busca un plan por ID.
func GetPlan(database *gorm.DB, id int64) (models.Plan, error) {
	var plan models.Plan
	err := database.First(&plan, id).Error
	return plan, err
}

// GetPlanes lista todos los planes, ordenados por ID.
func GetPlanes(database *gorm.DB) ([]models.Plan, error) {
	var planes []models.Plan
	err := database.Order("id asc").Find(&planes).Error
	return planes, err
}

// PlanCambios describe una actualización parcial de un plan. Los campos
// numéricos van por puntero para distinguir "no tocar" (nil) de "poner en
// cero": duración 0 es el centinela de plan expirado y tiene que poder
// setearse a propósito, nunca por accidente.
type PlanCambios struct {
	Tipo          string
	Precio        *float64
	DuracionMeses *int
}

// UpdatePlan pisa solamente los campos presentes en cambios.
func UpdatePlan(database *gorm.DB, id int64, cambios PlanCambios) (models.Plan, error) {
	var plan models.Plan
	if err := database.First(&plan, id).Error; err != nil {
		return plan, err
	}

	if cambios.Tipo != "" {
		plan.Tipo = cambios.Tipo
	}
	if cambios.Precio != nil {
		plan.Precio = *cambios.Precio
	}
	if cambios.DuracionMeses != nil {
		plan.DuracionMeses = *cambios.DuracionMeses
	}

	if err := validate.Struct(&plan); err != nil {
		return plan, err
	}
	err := database.Save(&plan).Error
	return plan, err
}

// DeletePlan borra un plan por ID. Si todavía hay clientes referenciando
// el plan se corta con ErrPlanEnUso, igual que el RESTRICT de postgres:
// en sqlite (sin FKs de AutoMigrate) el comportamiento queda parejo.
func DeletePlan(database *gorm.DB, id int64) error {
	var plan models.Plan
	if err := database.First(&plan, id).Error; err != nil {
		return err
	}

	var enUso int64
	if err := database.Model(&models.Cliente{}).Where("plan_id = ?", id).Count(&enUso).Error; err != nil {
		return err
	}
	if enUso > 0 {
		return ErrPlanEnUso
	}

	return database.Delete(&plan).Error
}
