package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string
	PublicBaseURL  string

	RedisAddr     string
	RedisPassword string

	JWTSecret  string
	SessionTTL time.Duration
	AppBaseURL string

	ThumbnailWidth int

	BrevoAPIKey    string
	BrevoFromEmail string
	BrevoFromName  string

	GithubClientID     string
	GithubClientSecret string
	GithubCallbackURL  string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("SESSION_TTL", 86400)
	viper.SetDefault("THUMBNAIL_WIDTH", 320)
	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"BUCKET",
		"JWT_SECRET",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		Bucket:         viper.GetString("BUCKET"),
		PublicBaseURL:  viper.GetString("PUBLIC_BASE_URL"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		JWTSecret:  viper.GetString("JWT_SECRET"),
		SessionTTL: time.Duration(viper.GetInt("SESSION_TTL")) * time.Second,
		AppBaseURL: viper.GetString("APP_BASE_URL"),

		ThumbnailWidth: viper.GetInt("THUMBNAIL_WIDTH"),

		BrevoAPIKey:    viper.GetString("BREVO_API_KEY"),
		BrevoFromEmail: viper.GetString("BREVO_FROM_EMAIL"),
		BrevoFromName:  viper.GetString("BREVO_FROM_NAME"),

		GithubClientID:     viper.GetString("GITHUB_CLIENT_ID"),
		GithubClientSecret: viper.GetString("GITHUB_CLIENT_SECRET"),
		GithubCallbackURL:  viper.GetString("GITHUB_CALLBACK_URL"),
	}, nil
}
