package configuration

import (
	"log"
	"os"

	"github.com/charmin16/hosp-mgt/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("No DATABASE_URL set. Please set it in your environment variables.")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}

	Migrate(DB)
}

// Migrate creates the four clinic tables. Split out so tests can run it
// against their own database handle.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Visit{},
		&models.PatientLogin{},
	)
}

// SessionSecret signs the session cookie. The fallback keeps local
// development working without a .env file.
func SessionSecret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-session-secret")
}

// JWTSecret signs the doctor identity token held inside the session.
func JWTSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-doctor-key")
}
