package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"certpoints/internal/app"
	"certpoints/internal/config"
	"certpoints/internal/logger"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	conf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %+v", err)
	}
	lg := logger.NewRollbarLogger(log.New(os.Stderr, "", log.LstdFlags), conf)

	log.Printf("Environment: %s (build %s)", conf.Env, conf.Build)
	if conf.OCR.OCREnabled() {
		log.Printf("  OCR service: %s", conf.OCR.OCRServiceURL)
	} else {
		log.Println("  OCR service: NOT SET (local extraction only)")
	}
	if conf.OCR.NLPEnabled() {
		log.Printf("  NLP service: %s", conf.OCR.NLPServiceURL)
	}

	a, err := app.Open(ctx, conf, lg)
	if err != nil {
		lg.Fatal("Failed to open stores", err)
	}
	defer a.Close(context.Background())

	router, err := a.Handler()
	if err != nil {
		lg.Fatal("Failed to build handler", err)
	}
	log.Println("Review feed hub started")

	// Start server
	srv := &http.Server{
		Addr:    ":" + conf.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", conf.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register, /v1/auth/login")
		log.Println("  POST/GET /v1/certificates")
		log.Println("  GET  /v1/certificates/summary")
		log.Println("  GET  /v1/certificates/class/{className}")
		log.Println("  PUT/DELETE /v1/certificates/{id}")
		log.Println("  GET  /v1/classes/{className}/leaderboard")
		log.Println("  GET/POST/PUT/DELETE /v1/activities")
		log.Println("  POST /v1/score/preview")
		log.Println("  WS  /v1/ws/classes/{className}")
		log.Println("  WS  /v1/ws/me")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
