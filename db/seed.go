package db

import (
	"log"

	"gimnasio/models"
	"gimnasio/tools"

	"github.com/jinzhu/gorm"
)

// Seed carga los datos de referencia iniciales (planes, entrenadores,
// clases) más algunos clientes, pagos y asistencias históricos. Es
// idempotente: si ya hay planes cargados no hace nada.
//
// Ojo: los montos de los pagos no se reconcilian con los precios de los
// planes. Son datos históricos sin validar, así vienen.
func Seed(database *gorm.DB) error {
	var total int64
	if err := database.Model(&models.Plan{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	log.Println("Cargando datos iniciales...")

	planes := []models.Plan{
		{ID: 1, Tipo: "Mensual", Precio: 25000.00, DuracionMeses: 1},
		{ID: 2, Tipo: "Trimestral", Precio: 65000.00, DuracionMeses: 3},
		{ID: 3, Tipo: "Semestral", Precio: 120000.00, DuracionMeses: 6},
		{ID: 4, Tipo: "Anual", Precio: 220000.00, DuracionMeses: 12},
		{ID: 5, Tipo: "Expirado", Precio: 0.00, DuracionMeses: 0},
	}

	entrenadores := []models.Entrenador{
		{ID: 1, Nombre: "Laura Méndez", Especialidad: "Musculación", Telefono: "555-0101", Email: "laura.mendez@gimnasio.com"},
		{ID: 2, Nombre: "Diego Torres", Especialidad: "Spinning", Telefono: "555-0102", Email: "diego.torres@gimnasio.com"},
		{ID: 3, Nombre: "Carla Ruiz", Especialidad: "Yoga", Telefono: "555-0103", Email: "carla.ruiz@gimnasio.com"},
	}

	ref := func(id int64) *int64 { return &id }

	clases := []models.Clase{
		{ID: 1, Nombre: "Spinning", Horario: "07:00", EntrenadorID: ref(2)},
		{ID: 2, Nombre: "Yoga", Horario: "09:30", EntrenadorID: ref(3)},
		{ID: 3, Nombre: "Musculación", Horario: "18:00", EntrenadorID: ref(1)},
		{ID: 4, Nombre: "Pilates", Horario: "19:30"},
	}

	clientes := []models.Cliente{
		{ID: 1, Nombre: "Ana García", Email: "ana.garcia@mail.com", Telefono: "555-0201", FechaRegistro: tools.Fecha("2024-01-15"), PlanID: ref(1)},
		{ID: 2, Nombre: "Luis Pérez", Email: "luis.perez@mail.com", Telefono: "555-0202", FechaRegistro: tools.Fecha("2024-03-02"), PlanID: ref(2)},
		{ID: 3, Nombre: "María López", Email: "maria.lopez@mail.com", Telefono: "555-0203", FechaRegistro: tools.Fecha("2024-06-20"), PlanID: ref(3)},
		{ID: 4, Nombre: "Jorge Díaz", Email: "jorge.diaz@mail.com", Telefono: "555-0204", FechaRegistro: tools.Fecha("2024-09-10"), PlanID: ref(4)},
		{ID: 5, Nombre: "Sofía Romero", Email: "sofia.romero@mail.com", Telefono: "555-0205", FechaRegistro: tools.Fecha("2023-05-05"), PlanID: ref(5)},
	}

	pagos := []models.Pago{
		{ID: 1, ClienteID: 1, Monto: 280000.00, FechaPago: tools.Fecha("2024-03-15")},
		{ID: 2, ClienteID: 2, Monto: 65000.00, FechaPago: tools.Fecha("2025-01-10")},
		{ID: 3, ClienteID: 3, Monto: 120000.00, FechaPago: tools.Fecha("2023-11-05")},
	}

	// Clase 4 (Pilates) queda a propósito sin asistencias.
	asistencias := []models.Asistencia{
		{ClienteID: 1, ClaseID: 1, Fecha: tools.Fecha("2025-02-03")},
		{ClienteID: 2, ClaseID: 1, Fecha: tools.Fecha("2025-02-03")},
		{ClienteID: 3, ClaseID: 2, Fecha: tools.Fecha("2025-02-04")},
		{ClienteID: 1, ClaseID: 3, Fecha: tools.Fecha("2025-02-05")},
	}

	tx := database.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	for i := range planes {
		if err := tx.Create(&planes[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	for i := range entrenadores {
		if err := tx.Create(&entrenadores[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	for i := range clases {
		if err := tx.Create(&clases[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	for i := range clientes {
		if err := tx.Create(&clientes[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	for i := range pagos {
		if err := tx.Create(&pagos[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	// Estas altas pasan por el hook del modelo: cada una deja su entrada
	// en log_asistencias.
	for i := range asistencias {
		if err := tx.Create(&asistencias[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
