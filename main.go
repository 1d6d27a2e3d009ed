package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/raushankrgupta/fitly-ai/api"
	"github.com/raushankrgupta/fitly-ai/config"
	"github.com/raushankrgupta/fitly-ai/utils"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}
	protected := func(next http.HandlerFunc) http.HandlerFunc {
		return corsMiddleware(api.AuthMiddleware(next))
	}

	// Auth Routes
	http.HandleFunc("/auth/signup", corsMiddleware(api.SignupHandler))
	http.HandleFunc("/auth/verify-email", corsMiddleware(api.VerifyEmailHandler))
	http.HandleFunc("/auth/verify-otp", corsMiddleware(api.VerifyOTPHandler))
	http.HandleFunc("/auth/login", corsMiddleware(api.LoginHandler))
	http.HandleFunc("/auth/forgot-password", corsMiddleware(api.ForgotPasswordHandler))
	http.HandleFunc("/auth/reset-password", corsMiddleware(api.ResetPasswordHandler))
	http.HandleFunc("/auth/google/login", corsMiddleware(api.GoogleLoginHandler))
	http.HandleFunc("/auth/google/callback", corsMiddleware(api.GoogleCallbackHandler))

	// Generation Flow Routes
	http.HandleFunc("/api/generate", protected(api.GenerateHandler))
	http.HandleFunc("/api/prompt/preview", protected(api.PromptPreviewHandler))
	http.HandleFunc("/api/video", protected(api.VideoHandler))
	http.HandleFunc("/api/flows", protected(api.FlowsHandler))
	http.HandleFunc("/api/flows/feedback", protected(api.FlowFeedbackHandler))

	// Catalog + Analysis Routes
	http.HandleFunc("/api/options", corsMiddleware(api.OptionsHandler))
	http.HandleFunc("/api/options/trending", corsMiddleware(api.TrendingOptionsHandler))
	http.HandleFunc("/api/analyze", protected(api.AnalyzeHandler))
	http.HandleFunc("/api/analyze/batch", protected(api.AnalyzeBatchHandler))
	http.HandleFunc("/api/recommendations", protected(api.RecommendationsHandler))
	http.HandleFunc("/api/insights", protected(api.InsightsHandler))

	// Profile Routes
	http.HandleFunc("/create-profile", protected(api.CreateProfileHandler))

	// Serve locally stored profile images
	http.Handle("/user_images/", http.StripPrefix("/user_images/", http.FileServer(http.Dir("user_images"))))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
