package main

import (
	authhandler "roomly/internal/auth/handler"
	authrepo "roomly/internal/auth/repository"
	authservice "roomly/internal/auth/service"
	"roomly/internal/bookings/events"
	bookinghandler "roomly/internal/bookings/handler"
	bookingrepo "roomly/internal/bookings/repository"
	bookingservice "roomly/internal/bookings/service"
	bookingvalidator "roomly/internal/bookings/validator"
	contacthandler "roomly/internal/contact/handler"
	contactrepo "roomly/internal/contact/repository"
	contactservice "roomly/internal/contact/service"
	roomhandler "roomly/internal/rooms/handler"
	roomrepo "roomly/internal/rooms/repository"
	roomservice "roomly/internal/rooms/service"
	"roomly/internal/rooms/storage"
	systemhandler "roomly/internal/system/handler"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/contracts"
	"roomly/pkg/kafka"

	"github.com/joho/godotenv"
)

const ServiceName = "roomly"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Roomly server")

	publisher := initPublisher(cfg)
	defer publisher.Close()

	handlers := initHandlers(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers...)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) *events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NewPublisher(nil, cfg.Log)
	}

	producer, err := kafka.NewProducer(kafka.DefaultProducerConfig(cfg.KafkaBrokers, cfg.KafkaBookingTopic))
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaBookingTopic)
	return events.NewPublisher(producer, cfg.Log)
}

func initHandlers(cfg *config.Config, publisher *events.Publisher) []contracts.Handler {
	userRepo := authrepo.NewMongoUserRepository(cfg)
	authSvc := authservice.NewAuthService(userRepo, cfg)

	imageStore, err := storage.NewLocalImageStore(cfg.ImageDir, cfg.PublicBaseURL, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize image store", "dir", cfg.ImageDir, "error", err)
	}
	roomRepo := roomrepo.NewMongoRoomRepository(cfg)
	roomSvc := roomservice.NewRoomService(roomRepo, imageStore, cfg)

	bookingRepo := bookingrepo.NewMongoBookingRepository(cfg)
	bookingLockRepo := bookingrepo.NewBookingLockRepository(cfg)
	bookingSvc := bookingservice.NewBookingService(
		bookingRepo,
		bookingLockRepo,
		roomRepo,
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	contactRepo := contactrepo.NewMongoContactRepository(cfg)
	contactSvc := contactservice.NewContactService(contactRepo, cfg)

	return []contracts.Handler{
		systemhandler.NewRootHandler(cfg.Log),
		authhandler.NewAuthHandler(authSvc, cfg.Log),
		roomhandler.NewRoomHandler(roomSvc, cfg.MaxUploadSize, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
		contacthandler.NewContactHandler(contactSvc, cfg.Log),
	}
}
