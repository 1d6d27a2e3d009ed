package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI           string
	DBName             string
	Port               string
	GeminiAPIKey       string
	HuggingFaceAPIKey  string
	AWSRegion          string
	AWSBucketName      string
	WebStudioURL       string
	ChromeDriverPath   string
	DefaultLanguage    string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	DBName = os.Getenv("DB_NAME")
	if DBName == "" {
		DBName = "fitly"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	HuggingFaceAPIKey = os.Getenv("HUGGINGFACE_API_KEY")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	// Base URL of the hosted image studio the browser drivers automate
	WebStudioURL = os.Getenv("WEB_STUDIO_URL")

	ChromeDriverPath = os.Getenv("CHROMEDRIVER_PATH")
	if ChromeDriverPath == "" {
		ChromeDriverPath = "/usr/local/bin/chromedriver"
	}

	DefaultLanguage = os.Getenv("DEFAULT_LANGUAGE")
	if DefaultLanguage == "" {
		DefaultLanguage = "en"
	}

	GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
}
