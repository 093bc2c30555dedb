package services

import (
	"database/sql"
	"time"

	"gimnasio/models"

	"github.com/jinzhu/gorm"
)

// ClienteActivo es la fila del reporte de clientes activos: cliente más
// los datos de su plan vigente.
type ClienteActivo struct {
	ClienteID     int64   `json:"cliente_id"`
	Nombre        string  `json:"nombre"`
	Email         string  `json:"email"`
	PlanTipo      string  `json:"plan_tipo"`
	Precio        float64 `json:"precio"`
	DuracionMeses int     `json:"duracion_meses"`
}

// AsistenciaClase es la fila del reporte de asistencias por clase.
type AsistenciaClase struct {
	ClaseID int64  `json:"clase_id"`
	Nombre  string `json:"nombre"`
	Total   int64  `json:"total"`
}

// ClientesActivos proyecta cliente×plan filtrando planes con duración
// mayor a cero. Un cliente sin plan, o con plan expirado (duración 0),
// queda fuera. Se recalcula en cada llamada, sin caché.
func ClientesActivos(database *gorm.DB) ([]ClienteActivo, error) {
	var filas []ClienteActivo
	err := database.Raw(`
		SELECT c.id AS cliente_id, c.nombre, c.email,
		       p.tipo AS plan_tipo, p.precio, p.duracion_meses
		FROM clientes c
		JOIN planes p ON p.id = c.plan_id
		WHERE p.duracion_meses > 0
		ORDER BY c.id`).Scan(&filas).Error
	return filas, err
}

// AsistenciasPorClase cuenta asistencias agrupadas por clase. El LEFT JOIN
// garantiza que una clase sin asistencias aparezca con total 0, no que
// falte la fila.
func AsistenciasPorClase(database *gorm.DB) ([]AsistenciaClase, error) {
	var filas []AsistenciaClase
	err := database.Raw(`
		SELECT cl.id AS clase_id, cl.nombre, COUNT(a.id) AS total
		FROM clases cl
		LEFT JOIN asistencias a ON a.clase_id = cl.id
		GROUP BY cl.id, cl.nombre
		ORDER BY cl.id`).Scan(&filas).Error
	return filas, err
}

// PlanDeCliente devuelve el tipo del plan actual del cliente, o cadena
// vacía si el cliente no existe o no tiene plan. Si hubiera más de una
// coincidencia se devuelve la primera, sin orden garantizado.
func PlanDeCliente(database *gorm.DB, clienteID int64) (string, error) {
	var tipo string
	row := database.Raw(`
		SELECT p.tipo
		FROM clientes c
		JOIN planes p ON p.id = c.plan_id
		WHERE c.id = ?
		LIMIT 1`, clienteID).Row()
	if err := row.Scan(&tipo); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return tipo, nil
}

// ClientesPorPlan cuenta los clientes que referencian el plan dado.
// Cero si no hay ninguno o si el plan no existe.
func ClientesPorPlan(database *gorm.DB, planID int64) (int64, error) {
	var total int64
	err := database.Model(&models.Cliente{}).Where("plan_id = ?", planID).Count(&total).Error
	return total, err
}

// IngresosTotales suma los montos de pagos con fecha_pago dentro del
// rango [desde, hasta] inclusive. Devuelve 0 (no un valor ausente)
// cuando ningún pago cae en el rango.
func IngresosTotales(database *gorm.DB, desde, hasta time.Time) (float64, error) {
	var total float64
	row := database.Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM pagos
		WHERE fecha_pago BETWEEN ? AND ?`, desde, hasta).Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
