package db

import (
	"path/filepath"
	"testing"

	"gimnasio/models"

	"github.com/jinzhu/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := gorm.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("no se pudo abrir la base de prueba: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := Migrate(database); err != nil {
		t.Fatalf("falló la migración: %v", err)
	}
	return database
}

func contar(t *testing.T, database *gorm.DB, modelo interface{}) int64 {
	t.Helper()

	var total int64
	if err := database.Model(modelo).Count(&total).Error; err != nil {
		t.Fatalf("no se pudo contar filas: %v", err)
	}
	return total
}

// Re-migrar sobre una base ya armada no puede fallar: el camino de las
// claves foráneas tolera el "already exists" y solo loguea el resto.
func TestMigrateEsRepetible(t *testing.T) {
	database := setupTestDB(t)

	if err := Migrate(database); err != nil {
		t.Fatalf("la segunda migración falló: %v", err)
	}
}

func TestSeedCargaDatosIniciales(t *testing.T) {
	database := setupTestDB(t)

	if err := Seed(database); err != nil {
		t.Fatalf("Seed falló: %v", err)
	}

	casos := []struct {
		nombre string
		modelo interface{}
		total  int64
	}{
		{"planes", &models.Plan{}, 5},
		{"clientes", &models.Cliente{}, 5},
		{"entrenadores", &models.Entrenador{}, 3},
		{"clases", &models.Clase{}, 4},
		{"pagos", &models.Pago{}, 3},
		{"asistencias", &models.Asistencia{}, 4},
		// cada asistencia del seed pasó por el hook y dejó su log
		{"log_asistencias", &models.LogAsistencia{}, 4},
	}
	for _, caso := range casos {
		if n := contar(t, database, caso.modelo); n != caso.total {
			t.Errorf("%s: esperaba %d filas, hay %d", caso.nombre, caso.total, n)
		}
	}

	// el plan 5 es el centinela expirado
	var plan models.Plan
	if err := database.First(&plan, 5).Error; err != nil {
		t.Fatalf("falta el plan 5: %v", err)
	}
	if plan.DuracionMeses != 0 {
		t.Errorf("el plan 5 tendría duración 0, vino %d", plan.DuracionMeses)
	}
}

func TestSeedEsIdempotente(t *testing.T) {
	database := setupTestDB(t)

	if err := Seed(database); err != nil {
		t.Fatalf("primer Seed falló: %v", err)
	}
	if err := Seed(database); err != nil {
		t.Fatalf("segundo Seed falló: %v", err)
	}

	if n := contar(t, database, &models.Plan{}); n != 5 {
		t.Errorf("esperaba 5 planes tras repetir el seed, hay %d", n)
	}
	if n := contar(t, database, &models.LogAsistencia{}); n != 4 {
		t.Errorf("esperaba 4 entradas de log tras repetir el seed, hay %d", n)
	}
}
