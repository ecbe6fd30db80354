package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/delivery/http/controllers"
	"prosedur-service/internal/app/delivery/http/middlewares"
	"prosedur-service/internal/app/delivery/http/routers"
	"prosedur-service/internal/app/drivers/database"
	"prosedur-service/internal/app/drivers/logger"
	"prosedur-service/internal/app/drivers/messaging"
	"prosedur-service/internal/app/drivers/storage"
	"prosedur-service/internal/app/services/core/conditionsearch"
	"prosedur-service/internal/app/services/core/practitioners"
	"prosedur-service/internal/app/services/core/procedures"
	"prosedur-service/internal/app/services/core/sessions"
	emrconditions "prosedur-service/internal/app/services/emr/conditions"
	emrorders "prosedur-service/internal/app/services/emr/orders"
	emrpractitioners "prosedur-service/internal/app/services/emr/practitioners"
	emrprocedures "prosedur-service/internal/app/services/emr/procedures"
	"prosedur-service/internal/app/services/shared/notificationqueue"
	"prosedur-service/internal/app/services/shared/redis"
	"prosedur-service/internal/app/services/shared/reportarchive"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	conceptConfig, err := config.NewConceptConfig()
	if err != nil {
		log.Fatalf("Error building concept configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDBClient(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		ConceptConfig:  conceptConfig,
	}
	bootstrap.RegistryStop = bootstrapTheApp(&bootstrap, mongoClient, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, mongoClient *mongo.Client, minioClient *minio.Client) func() {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := sessions.NewSessionService(redisRepository)

	notificationQueue, err := notificationqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.NotificationQueue)
	if err != nil {
		log.Fatalf("Error declaring notification queue: %v", err)
	}
	reportArchive := reportarchive.NewMinioReportArchive(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		SessionService: sessionService,
		InternalConfig: bootstrap.InternalConfig,
	}

	// EMR clients
	orderEmrClient := emrorders.NewOrderEmrClient(bootstrap.InternalConfig.EMR.BaseUrl)
	conditionEmrClient := emrconditions.NewConditionEmrClient(bootstrap.InternalConfig.EMR.BaseUrl)
	providerEmrClient := emrpractitioners.NewProviderEmrClient(bootstrap.InternalConfig.EMR.BaseUrl)
	procedureEmrClient := emrprocedures.NewProcedureEmrClient(bootstrap.InternalConfig.EMR.BaseUrl)

	// Session
	sessionUsecase := sessions.NewSessionUsecase(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	sessionController := controllers.NewSessionController(bootstrap.Logger, sessionUsecase)

	// Practitioner
	practitionerUsecase := practitioners.NewPractitionerUsecase(providerEmrClient, bootstrap.Logger)
	practitionerController := controllers.NewPractitionerController(bootstrap.Logger, practitionerUsecase)

	// Configuration
	configController := controllers.NewConfigController(bootstrap.Logger, bootstrap.ConceptConfig)

	// Complication search
	searchUsecase, registryStop := conditionsearch.NewSearchUsecase(conditionEmrClient, bootstrap.InternalConfig, bootstrap.Logger)
	searchController := controllers.NewSearchController(bootstrap.Logger, searchUsecase)

	// Procedure completion
	submissionRepository := procedures.NewSubmissionMongoRepository(mongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	procedureUsecase := procedures.NewProcedureUsecase(
		orderEmrClient,
		procedureEmrClient,
		searchUsecase,
		sessionService,
		submissionRepository,
		notificationQueue,
		reportArchive,
		bootstrap.InternalConfig,
		bootstrap.ConceptConfig,
		bootstrap.Logger,
	)
	procedureController := controllers.NewProcedureController(bootstrap.Logger, procedureUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		sessionController,
		practitionerController,
		configController,
		searchController,
		procedureController,
	)

	return registryStop
}
