package main

import (
	"context"

	"github.com/joho/godotenv"

	inquiryhandler "nexusplater/internal/inquiry/handler"
	"nexusplater/internal/inquiry/repository"
	"nexusplater/internal/inquiry/service"
	"nexusplater/internal/inquiry/validator"
	"nexusplater/internal/notify"
	webhandler "nexusplater/internal/web/handler"
	"nexusplater/pkg/app"
	"nexusplater/pkg/config"
	"nexusplater/pkg/messages"
	"nexusplater/pkg/sanitizer"
)

const ServiceName = "web"

func main() {
	// Optional in production; environments without a .env file fall
	// through to real environment variables.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting inquiry web service")

	catalog := messages.Default()

	inquiryRepo := repository.NewMongoInquiryRepository(cfg)
	ensureIndexes(cfg, inquiryRepo)

	publisher := initPublisher(cfg)
	inquiryService := initInquiryService(cfg, inquiryRepo, publisher, catalog)

	pageHandler, err := webhandler.NewPageHandler(inquiryService, catalog, cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize page templates", "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown(publisher)
	serverApp.SetApp(
		inquiryhandler.NewInquiryHandler(inquiryService, cfg.Log),
		pageHandler,
	)
	serverApp.Run()
}

func initInquiryService(
	cfg *config.Config,
	repo repository.InquiryRepository,
	publisher notify.Publisher,
	catalog messages.Catalog,
) service.InquiryService {
	clean := sanitizer.New()
	inquiryValidator := validator.NewInquiryValidator(catalog, clean, cfg.StrictNameCharset, cfg.Log)
	guard := service.NewDuplicateGuard(repo, cfg.Location, cfg.Log)

	inquiryService := service.NewInquiryService(
		repo,
		guard,
		inquiryValidator,
		publisher,
		catalog,
		cfg,
	)

	cfg.Log.Info("Inquiry service initialized",
		"database", cfg.MongoDatabaseName,
		"timezone", cfg.Location.String(),
	)
	return inquiryService
}

func initPublisher(cfg *config.Config) notify.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, events will be logged only")
		return notify.NewLogPublisher(cfg.Log)
	}

	publisher, err := notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}

	cfg.Log.Info("Kafka publisher initialized",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaTopic,
	)
	return publisher
}

func ensureIndexes(cfg *config.Config, repo repository.InquiryRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		cfg.Log.Fatal("Failed to create indexes", "error", err)
	}
	cfg.Log.Info("Database indexes ensured", "collection", repository.CollectionName)
}
