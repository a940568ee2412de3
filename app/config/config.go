package config

import (
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB     *sql.DB
	SMTP   SMTPConfig
	Stripe StripeConfig

	// AdminEmail receives contact-form, inquiry and new-application notices.
	AdminEmail string
	FromName   string
	SiteURL    string
	JWTSecret  string
	Port       string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

var AppConfig *Config

// Init loads environment configuration and opens the database pool.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres dbname=splash sslmode=disable"
		log.Println("DATABASE_URL not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	smtpPort, err := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		DB: db,
		SMTP: SMTPConfig{
			Host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:     smtpPort,
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     getEnvOrDefault("EMAIL_FROM", "contact@makeasplashfoundation.co"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		AdminEmail: getEnvOrDefault("ADMIN_EMAIL", "contact@makeasplashfoundation.co"),
		FromName:   getEnvOrDefault("EMAIL_FROM_NAME", "Make A Splash Foundation"),
		SiteURL:    getEnvOrDefault("SITE_URL", "https://makeasplashfoundation.co"),
		JWTSecret:  getEnvOrDefault("JWT_SECRET", "make-a-splash-secret-key"),
		Port:       getEnvOrDefault("PORT", "8080"),
	}

	log.Println("Database connected successfully")
	log.Println("Email configuration initialized")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
