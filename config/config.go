package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	Database string `json:"database"` // "sqlite3" o "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	// SqlitePath se usa solamente cuando Database == "sqlite3".
	SqlitePath string `json:"sqlite_path"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (para no pelear con campos vacíos)
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.SqlitePath == "" {
		c.SqlitePath = "db/gimnasio.db"
	}
	if c.DbHost == "" {
		c.DbHost = "localhost"
	}
	if c.DbPort == "" {
		c.DbPort = "5432"
	}

	return c
}
