package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// const dsn = "host=localhost user=postgres password=password dbname=barefoot port=5432 sslmode=disable TimeZone=Africa/Kigali"

var (
	API_ENV          string
	API_PORT         string
	APP_HOST         string
	JWT_SECRET       []byte
	REDIS_HOST       string
	KAFKA_BROKER     string
	MAIL_DRIVER      string
	MAIL_FROM        string
	S3_BUCKET        string
	FACEBOOK_ID      string
	FACEBOOK_SECRET  string
	GOOGLE_ID        string
	GOOGLE_SECRET    string
	DIGEST_CRON      string
	REQUEST_TIMEOUT  time.Duration
	RATE_LIMIT_RPS   int
	MAINTENANCE_MODE bool
)

// Load reads the environment into the package settings. It must run after
// any secrets have been exported into the environment.
func Load() {
	API_ENV = getEnv("API_ENV", "local")
	API_PORT = getEnv("PORT", "3000")
	APP_HOST = os.Getenv("APP_HOST")
	JWT_SECRET = []byte(os.Getenv("JWT_SECRET"))
	REDIS_HOST = os.Getenv("REDIS_HOST")
	KAFKA_BROKER = os.Getenv("KAFKA_BROKER")
	MAIL_DRIVER = getEnv("MAIL_DRIVER", "smtp")
	MAIL_FROM = getEnv("MAIL_FROM", "noreply@barefootnomad.com")
	S3_BUCKET = os.Getenv("S3_BUCKET")
	FACEBOOK_ID = os.Getenv("FACEBOOK_CLIENT_ID")
	FACEBOOK_SECRET = os.Getenv("FACEBOOK_CLIENT_SECRET")
	GOOGLE_ID = os.Getenv("GOOGLE_CLIENT_ID")
	GOOGLE_SECRET = os.Getenv("GOOGLE_CLIENT_SECRET")
	DIGEST_CRON = getEnv("DIGEST_CRON", "0 8 * * *")
	MAINTENANCE_MODE, _ = strconv.ParseBool(os.Getenv("MAINTENANCE_MODE"))

	REQUEST_TIMEOUT = 30 * time.Second
	if d, err := time.ParseDuration(os.Getenv("REQUEST_TIMEOUT")); err == nil {
		REQUEST_TIMEOUT = d
	}
	RATE_LIMIT_RPS = 5
	if n, err := strconv.Atoi(os.Getenv("RATE_LIMIT_RPS")); err == nil && n > 0 {
		RATE_LIMIT_RPS = n
	}
}

func GetDSN() string {
	DATABASE_HOST := getEnv("DATABASE_HOST", "localhost")
	DATABASE_PORT := getEnv("DATABASE_PORT", "5432")
	DATABASE_SSLMODE := getEnv("DATABASE_SSLMODE", "disable")
	DATABASE_TIMEZONE := getEnv("DATABASE_TIMEZONE", "UTC")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

func IsProd() bool {
	return API_ENV == "production"
}

func getEnv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

const DATE_FORMAT = "2006-01-02"
