// This is the main entry point of the market backend.
// It's responsible for loading configuration, seeding the in-memory state
// (user registry and product catalog), wiring services and handlers together,
// setting up the HTTP router and middleware, and starting the HTTP server
// with graceful shutdown.
//
// Analogy to Express: this file plays the role of the original `index.js`,
// where the app was created, `cors()` and `express.json()` applied, routes
// registered and `app.listen` called. The difference is that every piece of
// shared state is constructed here and injected explicitly instead of living
// in module-level variables.
// @title Market API
// @version 1.0
// @description Marketplace listing backend: product catalog plus a demo login issuing signed session tokens.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/market-go/apperror"
	"github.com/user/market-go/auth"
	"github.com/user/market-go/catalog"
	"github.com/user/market-go/config"
	_ "github.com/user/market-go/docs" // Generated Swagger docs, imported for registration
	"github.com/user/market-go/users"
)

func main() {
	// Load .env file. Useful in development; in production the variables are
	// usually set directly, so a missing file is only worth a warning.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Seed the in-memory state. Both the registry and the catalog vanish on
	// process exit: there is no persistence anywhere in this system.
	registry, err := users.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to seed user registry: %v", err)
	}
	store := catalog.NewSeededStore()

	// Manual dependency injection: services get their collaborators through
	// constructors, handlers get their services the same way.
	authService := auth.NewAuthService(registry, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)
	catalogHandlers := catalog.NewHandlers(store)

	r := newRouter(cfg, authService, authHandlers, catalogHandlers)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	// `http.Server` instead of `http.ListenAndServe` for timeout control and
	// graceful shutdown.
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine so the main goroutine can block on
	// shutdown signals.
	go func() {
		log.Printf("Server starting on %s (auth gate: %v)", addr, cfg.Auth.RequireAuth)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// newRouter assembles the chi router: global middleware, the public surface
// and the (possibly gated) mutating endpoints. Split out of main so tests can
// exercise the complete HTTP surface against a fresh store.
func newRouter(cfg *config.AppConfig, authService *auth.AuthService, authHandlers *auth.Handlers, catalogHandlers *catalog.Handlers) chi.Router {
	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)    // Log all requests
	r.Use(middleware.Recoverer) // Recover from panics
	r.Use(middleware.RequestID) // Add request ID to context
	r.Use(middleware.RealIP)    // Get real IP from proxy headers
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS: the original ran `app.use(cors())`, i.e. fully permissive.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic-to-500 middleware on top of Recoverer, so even unexpected
	// failures surface as the standard `{"message": ...}` error shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("error interno del servidor", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Swagger UI endpoint.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Liveness check: fixed payload, never fails.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Market backend funcionando 🚀",
		})
	})

	// Auth routes.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandlers.HandleLogin())
	})

	// Catalog routes. Reads are always open; writes sit behind the bearer
	// gate when AUTH_REQUIRED is on. With the gate off this is the open demo
	// variant: the same handlers, no identity, no createdBy stamping.
	r.Route("/products", func(r chi.Router) {
		r.Get("/", catalogHandlers.HandleList())
		r.Get("/{id}", catalogHandlers.HandleGet())

		r.Group(func(r chi.Router) {
			if cfg.Auth.RequireAuth {
				r.Use(auth.JWTMiddleware(authService))
			}
			r.Post("/", catalogHandlers.HandleCreate())
			r.Delete("/{id}", catalogHandlers.HandleDelete())
		})
	})

	return r
}

// writeError is a local helper for the panic recovery middleware: it writes
// the standard error shape straight from the apperror, with no dependency on
// any handler package.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
