package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Host         string
	Port         string
	DatabaseURL  string
	DatabaseName string
	JwtSecret    string
	UploadDir    string
}

// LoadConfig reads configuration from the environment, with a .env file as a
// best-effort supplement. A missing DATABASE_URL or DATABASE_NAME does not
// abort startup: the service runs without a record store and the /test
// diagnostic reports the missing values instead.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		Host:         os.Getenv("HOST"),
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		JwtSecret:    os.Getenv("JWT_SECRET"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
	}

	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "/tmp/uploads"
	}

	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set; running without a record store")
	}
	if cfg.DatabaseName == "" {
		log.Warn("DATABASE_NAME is not set; running without a record store")
	}
	if cfg.JwtSecret == "" {
		log.Warn("JWT_SECRET is not set; signin tokens will be signed with an empty secret")
	}

	return cfg
}
