package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection from DATABASE_URL and returns the
// handle. The handle is passed explicitly into repositories and services;
// nothing in the core holds a package-level connection.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=bankledger port=5432 sslmode=disable"
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey so services can map them to the error taxonomy.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

// Port returns the HTTP listen address, ":8080" unless PORT overrides it.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
