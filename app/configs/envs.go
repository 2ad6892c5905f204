package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	// store API owns the catalog and store configuration
	STORE_API_BASE_URL string
	STORE_API_KEY      string

	// image bases: origin serves full quality, CDN serves the low-quality
	// transform used for progressive loading
	ASSET_BASE_URL     string
	ASSET_CDN_BASE_URL string

	AppAuthKey string
	AppEncKey  string

	MIDTRANS_MERCHANT_KEY string
	MIDTRANS_CLIENT_KEY   string
	MIDTRANS_SERVER_KEY   string

	APP_URL string
	APP_ENV string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		STORE_API_BASE_URL: os.Getenv("STORE_API_BASE_URL"),
		STORE_API_KEY:      os.Getenv("STORE_API_KEY"),

		ASSET_BASE_URL:     os.Getenv("ASSET_BASE_URL"),
		ASSET_CDN_BASE_URL: os.Getenv("ASSET_CDN_BASE_URL"),

		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),

		MIDTRANS_MERCHANT_KEY: os.Getenv("MIDTRANS_MERCHANT_KEY"),
		MIDTRANS_CLIENT_KEY:   os.Getenv("MIDTRANS_CLIENT_KEY"),
		MIDTRANS_SERVER_KEY:   os.Getenv("MIDTRANS_SERVER_KEY"),

		APP_URL: os.Getenv("APP_URL"),
		APP_ENV: os.Getenv("APP_ENV"),
	}
}

var LoadENV = LoadEnv()

func GetAppBaseURL() string {
	if LoadENV.APP_URL != "" {
		return LoadENV.APP_URL
	}
	return "http://localhost" + LoadENV.Port
}
