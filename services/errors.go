package services

import "errors"

// Errores de validación del registro de asistencias. Se chequean con
// errors.Is. Cualquier otro error (unique de email, FK al insertar, etc.)
// viene del driver y se propaga tal cual.
var (
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrClaseNoEncontrada   = errors.New("clase no encontrada")
)

// Errores de borrado de datos de referencia: mantienen en sqlite el mismo
// rechazo que las claves RESTRICT dan en postgres.
var (
	ErrPlanEnUso       = errors.New("plan con clientes asignados")
	ErrEntrenadorEnUso = errors.New("entrenador con clases asignadas")
)
