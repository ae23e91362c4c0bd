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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	catalogHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/catalog"
	contactHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/contact"
	createReservationHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/get_availability"
	getTicketHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/get_ticket"
	listReservationsHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/list_reservations"
	manageScheduleHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/manage_schedule"
	manageSettingsHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/manage_settings"
	manageTablesHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/manage_tables"
	updateReservationStatusHandler "github.com/dev4ox/anti-cafe-reservation/internal/api/handlers/update_reservation_status"
	"github.com/dev4ox/anti-cafe-reservation/internal/api/middleware"
	"github.com/dev4ox/anti-cafe-reservation/internal/config"
	catalogRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/catalog"
	inboxRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/inbox"
	reservationRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/reservation"
	scheduleRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/schedule"
	settingsRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/settings"
	tableRepo "github.com/dev4ox/anti-cafe-reservation/internal/infra/storage/table"
	mailerClient "github.com/dev4ox/anti-cafe-reservation/internal/integrations/mailer"
	telegramClient "github.com/dev4ox/anti-cafe-reservation/internal/integrations/telegram"
	availabilityService "github.com/dev4ox/anti-cafe-reservation/internal/service/availability"
	calendarService "github.com/dev4ox/anti-cafe-reservation/internal/service/calendar"
	catalogService "github.com/dev4ox/anti-cafe-reservation/internal/service/catalog"
	inboxService "github.com/dev4ox/anti-cafe-reservation/internal/service/inbox"
	notifierService "github.com/dev4ox/anti-cafe-reservation/internal/service/notifier"
	reservationsService "github.com/dev4ox/anti-cafe-reservation/internal/service/reservations"
	settingsService "github.com/dev4ox/anti-cafe-reservation/internal/service/settings"
	tablesService "github.com/dev4ox/anti-cafe-reservation/internal/service/tables"
	createReservationUC "github.com/dev4ox/anti-cafe-reservation/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/dev4ox/anti-cafe-reservation/internal/usecase/get_availability"
	"github.com/dev4ox/anti-cafe-reservation/pkg/logger"
	"github.com/dev4ox/anti-cafe-reservation/pkg/metrics"
	"github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"
)

const telegramTimeout = 10 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting anti-cafe-reservation...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс заведения: от него считается окно минимального
	// уведомления при приёме брони
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.App.Timezone, err)
	}

	// Коллекторы регистрируются всегда, endpoint и middleware - по конфигу
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	tableRepository := tableRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	inboxRepository := inboxRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем интеграционных клиентов
	mailer := mailerClient.NewMailer(cfg.SMTP)
	telegram := telegramClient.NewClient(telegramTimeout, log)
	log.Info("Integration clients initialized (SMTP=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(scheduleRepository, log)
	availabilitySvc := availabilityService.NewService(reservationRepository, tableRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, availabilitySvc, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	inboxSvc := inboxService.NewService(inboxRepository, log)
	notifierSvc := notifierService.NewService(
		mailer,
		telegram,
		settingsSvc,
		reservationRepository,
		metricsCollector,
		cfg.App.BaseURL,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		calendarSvc,
		settingsSvc,
		notifierSvc,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		tableRepository,
		availabilitySvc,
		calendarSvc,
		settingsSvc,
		location,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getTicket := getTicketHandler.NewHandler(reservationsSvc, tablesSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	manageTables := manageTablesHandler.NewHandler(tablesSvc, log)
	manageSchedule := manageScheduleHandler.NewHandler(calendarSvc, log)
	manageSettings := manageSettingsHandler.NewHandler(settingsSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	contact := contactHandler.NewHandler(inboxSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор вариантов бронирования
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Билет по публичному коду
	api.HandleFunc("/tickets/{publicCode}", getTicket.Handle).Methods(http.MethodGet)

	// Каталог игр и товаров
	api.HandleFunc("/catalog/games", catalog.HandlePublicGames).Methods(http.MethodGet)
	api.HandleFunc("/catalog/products", catalog.HandlePublicProducts).Methods(http.MethodGet)

	// Форма обратной связи
	api.HandleFunc("/contact", contact.HandleSubmit).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-Key header)
	// ============================================================

	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.StaffAuth(cfg.App.StaffKey, log))

	// --- Бронирования ---
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Столы ---
	staff.HandleFunc("/tables", manageTables.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/tables", manageTables.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/tables/{id}", manageTables.HandleUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/tables/{id}", manageTables.HandleDelete).Methods(http.MethodDelete)

	// --- Расписание ---
	staff.HandleFunc("/schedule/weekly", manageSchedule.HandleWeeklyList).Methods(http.MethodGet)
	staff.HandleFunc("/schedule/weekly", manageSchedule.HandleWeeklyUpsert).Methods(http.MethodPut)
	staff.HandleFunc("/schedule/special", manageSchedule.HandleSpecialList).Methods(http.MethodGet)
	staff.HandleFunc("/schedule/special", manageSchedule.HandleSpecialCreate).Methods(http.MethodPost)
	staff.HandleFunc("/schedule/special/{id}", manageSchedule.HandleSpecialUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/schedule/special/{id}", manageSchedule.HandleSpecialDelete).Methods(http.MethodDelete)

	// --- Настройки ---
	staff.HandleFunc("/settings", manageSettings.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/settings", manageSettings.HandleUpdate).Methods(http.MethodPut)

	// --- Каталог ---
	staff.HandleFunc("/games", catalog.HandleGamesList).Methods(http.MethodGet)
	staff.HandleFunc("/games", catalog.HandleGameCreate).Methods(http.MethodPost)
	staff.HandleFunc("/games/{id}", catalog.HandleGameUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/games/{id}", catalog.HandleGameDelete).Methods(http.MethodDelete)
	staff.HandleFunc("/products", catalog.HandleProductsList).Methods(http.MethodGet)
	staff.HandleFunc("/products", catalog.HandleProductCreate).Methods(http.MethodPost)
	staff.HandleFunc("/products/{id}", catalog.HandleProductUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/products/{id}", catalog.HandleProductDelete).Methods(http.MethodDelete)

	// --- Входящие сообщения ---
	staff.HandleFunc("/inbox", contact.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/inbox/{id}/status", contact.HandleUpdateStatus).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
