package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBUser string
	DBPass string
	DBHost string
	DBName string
}

// LoadEnv reads configuration from the environment (and .env when present).
// JWTSecret sengaja tidak punya default: secret harus di-inject dari luar.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":1550"
	}

	dbHost := strings.TrimSpace(os.Getenv("DB_HOST"))
	if dbHost == "" {
		dbHost = "127.0.0.1:3306"
	}
	dbUser := strings.TrimSpace(os.Getenv("DB_USER"))
	if dbUser == "" {
		dbUser = "root"
	}
	dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
	if dbName == "" {
		dbName = "gr_coin"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		DBUser:    dbUser,
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    dbHost,
		DBName:    dbName,
	}
}
