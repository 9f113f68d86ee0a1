package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AppEnv          string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	JWTExpireHours  int
	CORSOrigin      string
	UploadDir       string
	MaxUploadSizeMB int64
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		AppEnv:          getEnv("APP_ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "inkwell"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpireHours:  getEnvInt("JWT_EXPIRE_HOURS", 168), // 7 days
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeMB: int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 8)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
