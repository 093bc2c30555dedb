package db

import (
	"log"
	"strings"

	"gimnasio/config"
	"gimnasio/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Connect abre la conexión (sqlite3 por defecto, postgres vía config).
func Connect(conf config.Configuration) (*gorm.DB, error) {
	var (
		database *gorm.DB
		err      error
	)

	if conf.Database == "postgres" || conf.Database == "postgresql" {
		log.Println("Usando conexión con postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass + " sslmode=disable"
		database, err = gorm.Open("postgres", path)
	} else {
		log.Println("Usando conexión con sqlite3...")
		database, err = gorm.Open("sqlite3", conf.SqlitePath)
	}

	if err != nil {
		log.Println("No se pudo conectar a la base: " + err.Error())
		return nil, err
	}

	return database, nil
}

// Migrate crea/actualiza las siete tablas y, en postgres, las claves
// foráneas con borrado en cascada para asistencias. En sqlite la cascada
// la aplican los deletes de services dentro de su transacción.
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.Plan{},
		&models.Cliente{},
		&models.Entrenador{},
		&models.Clase{},
		&models.Pago{},
		&models.Asistencia{},
		&models.LogAsistencia{},
	).Error
	if err != nil {
		return err
	}

	if database.Dialect().GetName() == "postgres" {
		claves := []struct {
			modelo   interface{}
			campo    string
			destino  string
			onDelete string
		}{
			{&models.Cliente{}, "plan_id", "planes(id)", "RESTRICT"},
			{&models.Clase{}, "entrenador_id", "entrenadores(id)", "RESTRICT"},
			{&models.Pago{}, "cliente_id", "clientes(id)", "CASCADE"},
			{&models.Asistencia{}, "cliente_id", "clientes(id)", "CASCADE"},
			{&models.Asistencia{}, "clase_id", "clases(id)", "CASCADE"},
		}
		for _, fk := range claves {
			err := database.Model(fk.modelo).AddForeignKey(fk.campo, fk.destino, fk.onDelete, fk.onDelete).Error
			if err != nil && !strings.Contains(err.Error(), "already exists") {
				// se tolera re-migrar sobre una base ya armada
				log.Println("No se pudo crear la FK " + fk.campo + " -> " + fk.destino + ": " + err.Error())
			}
		}
	}

	return nil
}
