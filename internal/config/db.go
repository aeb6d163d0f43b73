package config

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// InitDB - opsional, nil kalau DB_DSN kosong
func InitDB(cfg *Config) *sql.DB {
	if cfg.DBDSN == "" {
		log.Println("DB_DSN kosong, jurnal pengiriman dimatikan")
		return nil
	}

	db, err := sql.Open("mysql", cfg.DBDSN)
	if err != nil {
		log.Fatal("Gagal buka database:", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Database tidak nyambung:", err)
	}

	DB = db
	log.Println("Database connected")
	return DB
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
