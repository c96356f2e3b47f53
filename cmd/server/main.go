package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solo-ide-backend/internal/config"
	"solo-ide-backend/internal/handlers"
	"solo-ide-backend/internal/router"
	"solo-ide-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting backend...")

	// ──── Step 1: Load Configuration ────
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("✗ Configuration failed: %v", err)
	}
	log.Printf("✓ Configuration loaded (mode=%s, env=%s)", cfg.Mode, cfg.Env)

	// ──── Step 2: Build Routes ────
	var r http.Handler
	if cfg.Mode == config.ModeMock {
		r = router.NewMock(handlers.NewMockHandler(), cfg.AllowedOrigins)
		log.Println("✓ Mock /ask enabled (no AI calls)")
	} else {
		capability := services.CapabilityFor(cfg.GeminiAPIKey)

		var aiHandler *handlers.AIHandler
		if capability == services.Configured {
			geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTemperature)
			if err != nil {
				log.Fatalf("✗ Gemini client initialization failed: %v", err)
			}
			defer geminiService.Close()
			aiHandler = handlers.NewAIHandler(capability, geminiService)
			log.Printf("✓ Gemini client initialized (model=%s)", cfg.GeminiModel)
		} else {
			aiHandler = handlers.NewAIHandler(services.Unconfigured, nil)
			log.Println("⚠ GEMINI_API_KEY not set, serving fallback responses")
		}

		r = router.New(aiHandler, cfg.AllowedOrigins)
	}

	// ──── Step 3: Start HTTP Server ────
	// No WriteTimeout: a slow model reply holds its request open until it returns.
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		shutdown(server, 30*time.Second)
	}()

	log.Printf("✓ Backend ready on http://%s", cfg.Addr())

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// shutdown drains in-flight requests for at most timeout and logs a failed drain.
func shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		log.Printf("✗ Graceful shutdown failed: %v", err)
	}
	return err
}
