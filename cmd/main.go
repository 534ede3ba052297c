package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SWC-BookingService/internal/api/csrf"
	createBookingHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/create_booking"
	createContactHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/create_contact"
	getBookingHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/get_booking"
	getCsrfTokenHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/get_csrf_token"
	getQuoteHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/get_quote"
	getServiceAreaHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/get_service_area"
	healthHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/m04kA/SWC-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SWC-BookingService/internal/api/middleware"
	"github.com/m04kA/SWC-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SWC-BookingService/internal/infra/storage/booking"
	mailerClient "github.com/m04kA/SWC-BookingService/internal/integrations/mailer"
	"github.com/m04kA/SWC-BookingService/internal/postcode"
	"github.com/m04kA/SWC-BookingService/internal/ratelimit"
	bookingsService "github.com/m04kA/SWC-BookingService/internal/service/bookings"
	submitBookingUC "github.com/m04kA/SWC-BookingService/internal/usecase/submit_booking"
	submitContactUC "github.com/m04kA/SWC-BookingService/internal/usecase/submit_contact"
	"github.com/m04kA/SWC-BookingService/pkg/logger"
	"github.com/m04kA/SWC-BookingService/pkg/metrics"
)

// realTime is the production clock for the service-area handler
type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

func main() {
	// .env holds credentials in local setups, absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SWC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// A failed ping degrades /health instead of killing the process, so a
	// late-starting database doesn't take the contact form down with it.
	if err := db.Ping(); err != nil {
		log.Warn("Database unreachable at startup: %v", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Notification client
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		cfg.Mailer.APIKey,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)

	// Postcode classifier, round table from config or the built-in default
	rounds, err := cfg.ServiceArea.ToRounds()
	if err != nil {
		log.Fatal("Invalid service area config: %v", err)
	}
	classifier := postcode.NewClassifier(rounds)

	// Rate limiters share nothing: the contact form has its own, stricter
	// budget. The janitor below trims expired windows from both stores.
	bookingStore := ratelimit.NewMemoryStore()
	contactStore := ratelimit.NewMemoryStore()
	bookingLimiter := ratelimit.New(
		cfg.RateLimit.Booking.Limit,
		time.Duration(cfg.RateLimit.Booking.Window)*time.Second,
		ratelimit.WithStore(bookingStore),
	)
	contactLimiter := ratelimit.New(
		cfg.RateLimit.Contact.Limit,
		time.Duration(cfg.RateLimit.Contact.Window)*time.Second,
		ratelimit.WithStore(contactStore),
	)

	stopJanitor := make(chan struct{})
	go func() {
		interval := time.Duration(cfg.RateLimit.PurgeInterval) * time.Second
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				purged := bookingStore.PurgeExpired(now) + contactStore.PurgeExpired(now)
				if purged > 0 {
					log.Debug("Rate limit janitor purged %d expired window(s)", purged)
				}
			case <-stopJanitor:
				return
			}
		}
	}()

	// CSRF token manager
	csrfManager := csrf.NewManager([]byte(cfg.Security.CsrfSecret))

	// Repositories and services
	bookingRepository := bookingRepo.NewRepository(db)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Use cases. Lead counters are optional, nil when metrics are off.
	var bookingMetrics submitBookingUC.Metrics
	var contactMetrics submitContactUC.Metrics
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
		contactMetrics = metricsCollector
	}

	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		classifier,
		bookingLimiter,
		mailer,
		bookingMetrics,
		log,
	)
	submitContactUseCase := submitContactUC.NewUseCase(
		mailer,
		contactLimiter,
		contactMetrics,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, csrfManager, log)
	createContact := createContactHandler.NewHandler(submitContactUseCase, csrfManager, log)
	getCsrfToken := getCsrfTokenHandler.NewHandler(csrfManager, log)
	getQuote := getQuoteHandler.NewHandler(log)
	getServiceArea := getServiceAreaHandler.NewHandler(classifier, realTime{}, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	health := healthHandler.NewHandler(db)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public form endpoints
	api.HandleFunc("/bookings", getCsrfToken.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", createContact.Handle).Methods(http.MethodPost)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-area/{postcode}", getServiceArea.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/reference/{reference}", getBooking.HandleByReference).Methods(http.MethodGet)

	// Staff endpoints
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/staff/bookings", listBookings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopJanitor)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
