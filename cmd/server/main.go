package main

import (
	"gorm.io/gorm"

	"pawbook/internal/bookings/events"
	bookingshandler "pawbook/internal/bookings/handler"
	bookingsrepo "pawbook/internal/bookings/repository"
	bookingsservice "pawbook/internal/bookings/service"
	"pawbook/internal/bookings/validator"
	doctorshandler "pawbook/internal/doctors/handler"
	doctorsrepo "pawbook/internal/doctors/repository"
	doctorsservice "pawbook/internal/doctors/service"
	"pawbook/pkg/app"
	"pawbook/pkg/config"
	"pawbook/pkg/db"
	"pawbook/pkg/kafka"
	kafkaconfig "pawbook/pkg/kafka/config"
)

const ServiceName = "pawbook"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Pawbook service")

	gdb, err := db.Open(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to database", "error", err)
	}

	serverApp := app.NewApplication(cfg)

	publisher := initPublisher(cfg, serverApp)
	bookingService, doctorService := initServices(cfg, gdb, publisher)

	serverApp.SetApp(gdb,
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		doctorshandler.NewDoctorHandler(doctorService, cfg.Log),
	)
	serverApp.OnShutdown(func() error { return db.Close(gdb) })
	serverApp.Run()
}

func initPublisher(cfg *config.Config, serverApp *app.Application) events.Publisher {
	if !cfg.BookingEventsEnabled {
		cfg.Log.Info("Booking events disabled")
		return events.NewNoopPublisher()
	}

	producer, err := kafka.NewProducer(kafkaconfig.Load(), cfg.BookingEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	cfg.Log.Info("Booking events enabled", "topic", cfg.BookingEventsTopic)

	publisher := events.NewKafkaPublisher(producer, cfg.Log)
	serverApp.OnShutdown(publisher.Close)
	return publisher
}

func initServices(cfg *config.Config, gdb *gorm.DB, publisher events.Publisher) (bookingsservice.BookingService, doctorsservice.DoctorService) {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingsrepo.NewGormBookingRepository(cfg, gdb)
	bookingService := bookingsservice.NewBookingService(cfg, bookingRepo, bookingValidator, publisher, cfg.Log)

	doctorRepo := doctorsrepo.NewGormDoctorRepository(cfg, gdb)
	doctorService := doctorsservice.NewDoctorService(doctorRepo, cfg.Log)

	cfg.Log.Info("Services initialized")
	return bookingService, doctorService
}
