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

	completeAssignmentHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/complete_assignment"
	confirmAssignmentHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/confirm_assignment"
	createOfferHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/create_offer"
	createReservationHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/create_reservation"
	deleteAssignmentHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/delete_assignment"
	deleteReservationHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/delete_reservation"
	getCapacityHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/get_capacity"
	getReservationHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/get_reservation"
	listReservationAssignmentsHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/list_reservation_assignments"
	listReservationsHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/list_reservations"
	listStaffAssignmentsHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/list_staff_assignments"
	previewTimeSlotsHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/preview_time_slots"
	registerEmployeeHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/register_employee"
	renewContractHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/renew_contract"
	respondAssignmentHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/respond_assignment"
	unregisterEmployeeHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/unregister_employee"
	updateReservationHandler "github.com/m04kA/SMC-DispatchService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-DispatchService/internal/api/middleware"
	"github.com/m04kA/SMC-DispatchService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/assignment"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	companyServiceClient "github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
	staffServiceClient "github.com/m04kA/SMC-DispatchService/internal/integrations/staffservice"
	assignmentsService "github.com/m04kA/SMC-DispatchService/internal/service/assignments"
	reservationsService "github.com/m04kA/SMC-DispatchService/internal/service/reservations"
	createOfferUC "github.com/m04kA/SMC-DispatchService/internal/usecase/create_offer"
	createReservationUC "github.com/m04kA/SMC-DispatchService/internal/usecase/create_reservation"
	previewTimeSlotsUC "github.com/m04kA/SMC-DispatchService/internal/usecase/preview_time_slots"
	renewContractUC "github.com/m04kA/SMC-DispatchService/internal/usecase/renew_contract"
	updateReservationUC "github.com/m04kA/SMC-DispatchService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-DispatchService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DispatchService/pkg/logger"
	"github.com/m04kA/SMC-DispatchService/pkg/metrics"
	"github.com/m04kA/SMC-DispatchService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DispatchService/pkg/txmanager"
)

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

	log.Info("Starting SMC-DispatchService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Инициализируем интеграционных клиентов
	companyClient := companyServiceClient.NewClient(
		cfg.CompanyService.URL,
		time.Duration(cfg.CompanyService.Timeout)*time.Second,
		log,
	)
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CompanyService=%s timeout=%ds, StaffService=%s timeout=%ds)",
		cfg.CompanyService.URL, cfg.CompanyService.Timeout, cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		assignmentRepository  *assignmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		assignmentRepository,
		companyClient,
		txMgr,
		log,
	)
	assignmentSvc := assignmentsService.NewService(
		assignmentRepository,
		reservationRepository,
		txMgr,
		assignmentsService.RealTimeProvider{},
		cfg.Workflow.EnforceCapacity,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		companyClient,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		log,
	)
	createOfferUseCase := createOfferUC.NewUseCase(
		assignmentRepository,
		reservationRepository,
		staffClient,
		txMgr,
		cfg.Workflow.Mode(),
		cfg.Workflow.EnforceCapacity,
		log,
	)
	previewTimeSlotsUseCase := previewTimeSlotsUC.NewUseCase(log)
	renewContractUseCase := renewContractUC.NewUseCase(companyClient, log)

	log.Info("Workflow configured (offer_mode=%s, enforce_capacity=%t)",
		cfg.Workflow.Mode(), cfg.Workflow.EnforceCapacity)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	previewTimeSlots := previewTimeSlotsHandler.NewHandler(previewTimeSlotsUseCase, log)
	getCapacity := getCapacityHandler.NewHandler(reservationSvc, log)
	registerEmployee := registerEmployeeHandler.NewHandler(reservationSvc, log)
	unregisterEmployee := unregisterEmployeeHandler.NewHandler(reservationSvc, log)
	createOffer := createOfferHandler.NewHandler(createOfferUseCase, log)
	listReservationAssignments := listReservationAssignmentsHandler.NewHandler(assignmentSvc, log)
	listStaffAssignments := listStaffAssignmentsHandler.NewHandler(assignmentSvc, log)
	respondAssignment := respondAssignmentHandler.NewHandler(assignmentSvc, log)
	confirmAssignment := confirmAssignmentHandler.NewHandler(assignmentSvc, log)
	completeAssignment := completeAssignmentHandler.NewHandler(assignmentSvc, log)
	deleteAssignment := deleteAssignmentHandler.NewHandler(assignmentSvc, log)
	renewContract := renewContractHandler.NewHandler(renewContractUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Предпросмотр нарезки окна на слоты
	api.HandleFunc("/time-slots/preview", previewTimeSlots.Handle).Methods(http.MethodPost)

	// Список предложений (доска для стаффа)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Карточка предложения
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Сводка по вместимости предложения
	api.HandleFunc("/reservations/{reservationId}/capacity", getCapacity.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Предложения ---
	// Создание предложения
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Обновление предложения (с перепланированием слотов при изменении окна)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление предложения
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Сотрудники компании в слотах ---
	// Запись сотрудника в слот
	protected.HandleFunc("/reservations/{reservationId}/employees", registerEmployee.Handle).Methods(http.MethodPost)

	// Снятие сотрудника со слота
	protected.HandleFunc("/reservations/{reservationId}/slots/{slotNumber}/employee",
		unregisterEmployee.Handle).Methods(http.MethodDelete)

	// --- Офферы и ассайны ---
	// Отправка оффера стаффу
	protected.HandleFunc("/reservations/{reservationId}/assignments", createOffer.Handle).Methods(http.MethodPost)

	// Ассайны предложения
	protected.HandleFunc("/reservations/{reservationId}/assignments",
		listReservationAssignments.Handle).Methods(http.MethodGet)

	// Ассайны стаффа
	protected.HandleFunc("/staff/{staffId}/assignments", listStaffAssignments.Handle).Methods(http.MethodGet)

	// Ответ стаффа на оффер
	protected.HandleFunc("/assignments/{assignmentId}/accept", respondAssignment.HandleAccept).Methods(http.MethodPost)
	protected.HandleFunc("/assignments/{assignmentId}/reject", respondAssignment.HandleReject).Methods(http.MethodPost)

	// Административное подтверждение ассайна
	protected.HandleFunc("/assignments/{assignmentId}/confirm", confirmAssignment.Handle).Methods(http.MethodPost)

	// Отметка об отработке
	protected.HandleFunc("/assignments/{assignmentId}/complete", completeAssignment.Handle).Methods(http.MethodPost)

	// Удаление ассайна
	protected.HandleFunc("/assignments/{assignmentId}", deleteAssignment.Handle).Methods(http.MethodDelete)

	// --- Контракты компаний ---
	// Продление контракта (6 или 12 месяцев)
	protected.HandleFunc("/companies/{companyId}/contract/renew", renewContract.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
