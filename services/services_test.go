package services

import (
	"path/filepath"
	"testing"

	"gimnasio/db"
	"gimnasio/models"

	"github.com/jinzhu/gorm"
)

// setupTestDB abre una base sqlite descartable y migra las tablas.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := gorm.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("no se pudo abrir la base de prueba: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.Migrate(database); err != nil {
		t.Fatalf("falló la migración: %v", err)
	}
	return database
}

// setupSeededDB arma la base con los datos iniciales completos.
func setupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	database := setupTestDB(t)
	if err := db.Seed(database); err != nil {
		t.Fatalf("falló la carga de datos iniciales: %v", err)
	}
	return database
}

func contarFilas(t *testing.T, database *gorm.DB, modelo interface{}) int64 {
	t.Helper()

	var total int64
	if err := database.Model(modelo).Count(&total).Error; err != nil {
		t.Fatalf("no se pudo contar filas: %v", err)
	}
	return total
}

func crearClienteYClase(t *testing.T, database *gorm.DB) (models.Cliente, models.Clase) {
	t.Helper()

	cliente := models.Cliente{Nombre: "Ana García", Email: "ana@mail.com"}
	if err := CreateCliente(database, &cliente); err != nil {
		t.Fatalf("CreateCliente falló: %v", err)
	}
	clase := models.Clase{Nombre: "Spinning", Horario: "07:00"}
	if err := CreateClase(database, &clase); err != nil {
		t.Fatalf("CreateClase falló: %v", err)
	}
	return cliente, clase
}
