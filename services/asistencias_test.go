package services

import (
	"errors"
	"testing"
	"time"

	"gimnasio/models"
	"gimnasio/tools"
)

func TestRegistrarAsistenciaClienteInexistente(t *testing.T) {
	database := setupTestDB(t)
	_, clase := crearClienteYClase(t, database)

	_, err := RegistrarAsistencia(database, 999, clase.ID, tools.Fecha("2025-02-20"))
	if !errors.Is(err, ErrClienteNoEncontrado) {
		t.Fatalf("esperaba ErrClienteNoEncontrado, vino: %v", err)
	}

	if n := contarFilas(t, database, &models.Asistencia{}); n != 0 {
		t.Errorf("no tendría que haber asistencias, hay %d", n)
	}
	if n := contarFilas(t, database, &models.LogAsistencia{}); n != 0 {
		t.Errorf("no tendría que haber entradas de log, hay %d", n)
	}
}

func TestRegistrarAsistenciaClaseInexistente(t *testing.T) {
	database := setupTestDB(t)
	cliente, _ := crearClienteYClase(t, database)

	_, err := RegistrarAsistencia(database, cliente.ID, 999, tools.Fecha("2025-02-20"))
	if !errors.Is(err, ErrClaseNoEncontrada) {
		t.Fatalf("esperaba ErrClaseNoEncontrada, vino: %v", err)
	}

	if n := contarFilas(t, database, &models.Asistencia{}); n != 0 {
		t.Errorf("no tendría que haber asistencias, hay %d", n)
	}
	if n := contarFilas(t, database, &models.LogAsistencia{}); n != 0 {
		t.Errorf("no tendría que haber entradas de log, hay %d", n)
	}
}

// Si faltan el cliente y la clase, el error reportado es el del cliente.
func TestRegistrarAsistenciaAmbosInexistentes(t *testing.T) {
	database := setupTestDB(t)

	_, err := RegistrarAsistencia(database, 999, 999, tools.Fecha("2025-02-20"))
	if !errors.Is(err, ErrClienteNoEncontrado) {
		t.Fatalf("esperaba ErrClienteNoEncontrado, vino: %v", err)
	}
}

func TestRegistrarAsistenciaOK(t *testing.T) {
	database := setupTestDB(t)
	cliente, clase := crearClienteYClase(t, database)

	id, err := RegistrarAsistencia(database, cliente.ID, clase.ID, tools.Fecha("2025-03-01"))
	if err != nil {
		t.Fatalf("RegistrarAsistencia falló: %v", err)
	}
	if id == 0 {
		t.Fatal("esperaba un ID nuevo distinto de cero")
	}

	asistencia, err := GetAsistencia(database, id)
	if err != nil {
		t.Fatalf("GetAsistencia falló: %v", err)
	}
	if asistencia.ClienteID != cliente.ID || asistencia.ClaseID != clase.ID {
		t.Errorf("asistencia con referencias equivocadas: %+v", asistencia)
	}
	if got := asistencia.Fecha.Format(tools.FormatoFecha); got != "2025-03-01" {
		t.Errorf("fecha: esperaba 2025-03-01, vino %s", got)
	}

	entradas, err := GetLogAsistencias(database)
	if err != nil {
		t.Fatalf("GetLogAsistencias falló: %v", err)
	}
	if len(entradas) != 1 {
		t.Fatalf("esperaba exactamente 1 entrada de log, hay %d", len(entradas))
	}
	entrada := entradas[0]
	if entrada.ClienteID != cliente.ID || entrada.ClaseID != clase.ID {
		t.Errorf("log con referencias equivocadas: %+v", entrada)
	}
	if got := entrada.Fecha.Format(tools.FormatoFecha); got != "2025-03-01" {
		t.Errorf("fecha del log: esperaba 2025-03-01, vino %s", got)
	}
	if entrada.Mensaje != models.MensajeNuevaAsistencia {
		t.Errorf("mensaje: esperaba %q, vino %q", models.MensajeNuevaAsistencia, entrada.Mensaje)
	}
	if entrada.FechaLog.IsZero() {
		t.Error("la entrada de log quedó sin timestamp")
	}
}

func TestRegistrarAsistenciaFechaPorDefecto(t *testing.T) {
	database := setupTestDB(t)
	cliente, clase := crearClienteYClase(t, database)

	id, err := RegistrarAsistencia(database, cliente.ID, clase.ID, time.Time{})
	if err != nil {
		t.Fatalf("RegistrarAsistencia falló: %v", err)
	}

	asistencia, err := GetAsistencia(database, id)
	if err != nil {
		t.Fatalf("GetAsistencia falló: %v", err)
	}
	hoy := tools.Hoy().Format(tools.FormatoFecha)
	if got := asistencia.Fecha.Format(tools.FormatoFecha); got != hoy {
		t.Errorf("fecha por defecto: esperaba %s, vino %s", hoy, got)
	}
}

// El sistema no deduplica: dos registros iguales producen dos filas y
// dos entradas de log independientes.
func TestRegistrarAsistenciaDuplicada(t *testing.T) {
	database := setupTestDB(t)
	cliente, clase := crearClienteYClase(t, database)

	fecha := tools.Fecha("2025-03-01")
	id1, err := RegistrarAsistencia(database, cliente.ID, clase.ID, fecha)
	if err != nil {
		t.Fatalf("primer registro falló: %v", err)
	}
	id2, err := RegistrarAsistencia(database, cliente.ID, clase.ID, fecha)
	if err != nil {
		t.Fatalf("segundo registro falló: %v", err)
	}
	if id1 == id2 {
		t.Errorf("esperaba IDs distintos, los dos son %d", id1)
	}

	if n := contarFilas(t, database, &models.Asistencia{}); n != 2 {
		t.Errorf("esperaba 2 asistencias, hay %d", n)
	}
	if n := contarFilas(t, database, &models.LogAsistencia{}); n != 2 {
		t.Errorf("esperaba 2 entradas de log, hay %d", n)
	}
}

// Un insert directo (sin pasar por RegistrarAsistencia) también tiene que
// dejar su entrada en el log: la traza va en el hook del modelo, no en el
// workflow.
func TestInsertDirectoTambienDejaLog(t *testing.T) {
	database := setupTestDB(t)
	cliente, clase := crearClienteYClase(t, database)

	asistencia := models.Asistencia{
		ClienteID: cliente.ID,
		ClaseID:   clase.ID,
		Fecha:     tools.Fecha("2025-04-10"),
	}
	if err := database.Create(&asistencia).Error; err != nil {
		t.Fatalf("insert directo falló: %v", err)
	}

	entradas, err := GetLogAsistencias(database)
	if err != nil {
		t.Fatalf("GetLogAsistencias falló: %v", err)
	}
	if len(entradas) != 1 {
		t.Fatalf("esperaba exactamente 1 entrada de log, hay %d", len(entradas))
	}
	if entradas[0].ClienteID != cliente.ID || entradas[0].ClaseID != clase.ID {
		t.Errorf("log con referencias equivocadas: %+v", entradas[0])
	}
}

func TestGetAsistenciasPorCliente(t *testing.T) {
	database := setupSeededDB(t)

	asistencias, err := GetAsistenciasPorCliente(database, 1)
	if err != nil {
		t.Fatalf("GetAsistenciasPorCliente falló: %v", err)
	}
	if len(asistencias) != 2 {
		t.Fatalf("esperaba 2 asistencias del cliente 1, hay %d", len(asistencias))
	}
	for _, a := range asistencias {
		if a.ClienteID != 1 {
			t.Errorf("asistencia de otro cliente en el resultado: %+v", a)
		}
	}
}
