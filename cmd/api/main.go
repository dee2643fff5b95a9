package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jdgomez/homebank/internal/api/handlers"
	"github.com/jdgomez/homebank/internal/api/middleware"
	"github.com/jdgomez/homebank/internal/auth"
	"github.com/jdgomez/homebank/internal/bank"
	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/logger"
	"github.com/jdgomez/homebank/internal/modal"
	"github.com/jdgomez/homebank/internal/storage"
)

func main() {
	// Parse command-line flags
	var (
		port         = flag.String("port", "8080", "HTTP server port")
		dataDir      = flag.String("data", defaultDataDir(), "data directory for the file store (or set HOMEBANK_DATA env)")
		useMemory    = flag.Bool("mem", false, "use an in-memory store instead of the file store")
		successDelay = flag.Duration("success-delay", 2*time.Second, "delay before success modals are raised")
	)
	flag.Parse()

	// Initialize logger
	log := logger.New("api")

	// Initialize storage
	var kv storage.KV
	if *useMemory {
		log.Warn().Msg("Using in-memory store - data is lost on shutdown")
		kv = storage.NewMemoryStore()
	} else {
		fileStore, err := storage.NewFileStore(*dataDir, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open data directory")
		}
		log.Info().Str("data_dir", *dataDir).Msg("Using file store")
		kv = fileStore
	}

	// Initialize the modal center and the domain service
	center := modal.NewCenter()
	notify := modal.NewNotifier(center, *successDelay, log)
	svc := bank.NewService(kv, center, notify, log)
	gate := auth.NewGate(kv, domain.DefaultUsers(), log)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(gate, center, log)
	accountsHandler := handlers.NewAccountsHandler(svc, gate, log)
	incomesHandler := handlers.NewIncomesHandler(svc, gate, log)
	transactionsHandler := handlers.NewTransactionsHandler(svc, gate, log)
	alertsHandler := handlers.NewAlertsHandler(svc, gate, log)
	modalsHandler := handlers.NewModalsHandler(center, log)

	// Create router
	mux := http.NewServeMux()

	// Session endpoints
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			sessionHandler.Login(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			sessionHandler.Logout(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/session", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			sessionHandler.Session(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Accounts endpoints
	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			accountsHandler.List(w, r)
		case http.MethodPost:
			accountsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/accounts/", func(w http.ResponseWriter, r *http.Request) {
		accountNumber := strings.TrimPrefix(r.URL.Path, "/api/accounts/")
		if accountNumber == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Account number is required")
			return
		}
		switch r.Method {
		case http.MethodPut:
			accountsHandler.Update(w, r, accountNumber)
		case http.MethodDelete:
			accountsHandler.Delete(w, r, accountNumber)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Incomes endpoints
	mux.HandleFunc("/api/incomes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			incomesHandler.List(w, r)
		case http.MethodPost:
			incomesHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Transactions endpoints
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			transactionsHandler.List(w, r)
		case http.MethodPost:
			transactionsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Alerts endpoints
	mux.HandleFunc("/api/alerts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			alertsHandler.List(w, r)
		case http.MethodPost:
			alertsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/alerts/", func(w http.ResponseWriter, r *http.Request) {
		alertID := strings.TrimPrefix(r.URL.Path, "/api/alerts/")
		if alertID == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Alert id is required")
			return
		}
		if r.Method == http.MethodDelete {
			alertsHandler.Delete(w, r, alertID)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Modals endpoints
	mux.HandleFunc("/api/modals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			modalsHandler.List(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/modals/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/modals/"), "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Expected /api/modals/{variant}/{action}")
			return
		}
		modalsHandler.Resolve(w, r, parts[0], parts[1])
	})

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(
					middleware.RequireSession(gate)(mux),
				),
			),
		),
	)

	server := &http.Server{
		Addr:    ":" + *port,
		Handler: handler,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", *port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func defaultDataDir() string {
	if dir := os.Getenv("HOMEBANK_DATA"); dir != "" {
		return dir
	}
	return "data"
}
