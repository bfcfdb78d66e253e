package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	discordclient "guilddash/clients/discord"
	"guilddash/config"
	"guilddash/gateway"
	"guilddash/handlers"
	"guilddash/middleware"
	"guilddash/services/dispatch"
	"guilddash/services/guilds"
	"guilddash/services/sessions"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Open the single process-wide gateway connection. Readiness arrives
	// asynchronously; the services gate on it per request.
	gatewayManager, err := gateway.NewManager(cfg.BotToken)
	if err != nil {
		return err
	}
	if err := gatewayManager.Start(); err != nil {
		return err
	}
	defer gatewayManager.Stop()

	discordClient := discordclient.NewDiscordClient(gatewayManager.Session(), &http.Client{Timeout: 15 * time.Second})

	sessionsService := sessions.NewSessionsService()
	guildsService := guilds.NewGuildsService(discordClient, gatewayManager)
	dispatchService := dispatch.NewDispatchService(discordClient, gatewayManager)

	authMiddleware := middleware.NewSessionAuthMiddleware(sessionsService, cfg.SessionSecret, cfg.OwnerID)
	authHandler := handlers.NewAuthHandler(
		discordClient,
		sessionsService,
		cfg.OAuthConfig.ClientID,
		cfg.OAuthConfig.ClientSecret,
		cfg.BaseURL,
		cfg.SessionSecret,
	)
	dashboardHandler := handlers.NewDashboardAPIHandler(guildsService, dispatchService)
	dashboardHTTPHandler := handlers.NewDashboardHTTPHandler(dashboardHandler)

	// Create a new router
	router := mux.NewRouter()

	dashboardHTTPHandler.SetupEndpoints(router, authMiddleware)
	authHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok","gateway":"` + gatewayManager.State().String() + `"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Static dashboard assets
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("public")))

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
