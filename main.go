package main

import (
	"log"
	"os"

	"gimnasio/config"
	"gimnasio/db"
	"gimnasio/models"

	"github.com/joho/godotenv"
)

// =====================
// ENV esperadas
// =====================
//
// - CONFIG_PATH   (ruta del config JSON; default: config.json)
// - DB_LOG        (si "1", activa el log de SQL de gorm)
//
// El binario prepara la base: conecta, migra y carga los datos de
// referencia. La API del sistema son los packages services/consultas,
// no hay superficie HTTP.

func main() {
	// .env opcional para desarrollo local
	_ = godotenv.Load()

	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if os.Getenv("DB_LOG") == "1" {
		database.LogMode(true)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal("Error en la migración: " + err.Error())
	}
	if err := db.Seed(database); err != nil {
		log.Fatal("Error cargando datos iniciales: " + err.Error())
	}

	var planes, clientes, entrenadores, clases int64
	database.Model(&models.Plan{}).Count(&planes)
	database.Model(&models.Cliente{}).Count(&clientes)
	database.Model(&models.Entrenador{}).Count(&entrenadores)
	database.Model(&models.Clase{}).Count(&clases)

	log.Printf("Base lista: planes=%d clientes=%d entrenadores=%d clases=%d",
		planes, clientes, entrenadores, clases)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
