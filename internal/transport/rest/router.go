package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	_ "certpoints/internal/docs" // registers the API description
	"certpoints/internal/service"
	"certpoints/internal/transport/rest/handler"
	"certpoints/internal/transport/rest/middleware"
	"certpoints/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	CatalogService     *service.CatalogService
	CertificateService *service.CertificateService
	WSHub              *ws.Hub
	MaxUploadBytes     int64
	CORSAllowedOrigins []string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	certHandler := handler.NewCertificateHandler(c.CertificateService, c.MaxUploadBytes)
	activityHandler := handler.NewActivityHandler(c.CatalogService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSAllowedOrigins))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/classes/{className}", wsHandler.ClassWS).Methods("GET")
	v1.HandleFunc("/ws/me", wsHandler.UserWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API description
	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	// Any authenticated user
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireAuth)

	userRoutes.HandleFunc("/activities", activityHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/activities/search/{query}", activityHandler.Search).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/activities/{id}", activityHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/score/preview", certHandler.Preview).Methods("POST", "OPTIONS")

	// Student routes
	studentRoutes := v1.NewRoute().Subrouter()
	studentRoutes.Use(authMW.RequireAuth, authMW.RequireStudent)

	studentRoutes.HandleFunc("/certificates", certHandler.Upload).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/certificates", certHandler.List).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/certificates/summary", certHandler.Summary).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/certificates/{id}", certHandler.Delete).Methods("DELETE", "OPTIONS")

	// Teacher routes
	teacherRoutes := v1.NewRoute().Subrouter()
	teacherRoutes.Use(authMW.RequireAuth, authMW.RequireTeacher)

	teacherRoutes.HandleFunc("/certificates/class/{className}", certHandler.ListByClass).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/certificates/{id}", certHandler.Review).Methods("PUT", "OPTIONS")
	teacherRoutes.HandleFunc("/classes/{className}/leaderboard", certHandler.Leaderboard).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/activities", activityHandler.Create).Methods("POST", "OPTIONS")
	teacherRoutes.HandleFunc("/activities/{id}", activityHandler.Update).Methods("PUT", "OPTIONS")
	teacherRoutes.HandleFunc("/activities/{id}", activityHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

// corsMiddleware echoes an allowed Origin back, or "*" when any is allowed
func corsMiddleware(allowed []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := allowOrigin(allowed, r.Header.Get("Origin")); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowOrigin(allowed []string, origin string) string {
	if len(allowed) == 0 {
		return "*"
	}
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(a, origin) {
			return origin
		}
	}
	return ""
}
