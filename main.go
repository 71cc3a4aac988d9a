package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Sauhard04/propertyDekho/config"
	"github.com/Sauhard04/propertyDekho/handlers"
	"github.com/Sauhard04/propertyDekho/mailer"
	"github.com/Sauhard04/propertyDekho/routes"
	"github.com/Sauhard04/propertyDekho/store"
	"github.com/Sauhard04/propertyDekho/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.ConnectDB(cfg); err != nil {
		log.Fatalf("mongodb: %v", err)
	}

	utils.InitRedis(cfg.RedisAddr, cfg.RedisPassword)

	userStore := store.NewMongoUserStore(config.GetCollection("users"))
	propertyStore := store.NewMongoPropertyStore(config.GetCollection("properties"))
	clientStore := store.NewMongoClientStore(config.GetCollection("clients"))
	meetingStore := store.NewMongoMeetingStore(config.GetCollection("meetings"))
	transactionStore := store.NewMongoTransactionStore(config.GetCollection("transactions"))

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit("50M"))

	routes.RegisterRoutes(e, routes.Controllers{
		Users:        handlers.NewUserController(userStore),
		Properties:   handlers.NewPropertyController(propertyStore),
		Clients:      handlers.NewClientController(clientStore),
		Meetings:     handlers.NewMeetingController(meetingStore, clientStore, propertyStore),
		Transactions: handlers.NewTransactionController(transactionStore),
		Enquiries:    handlers.NewEnquiryController(propertyStore, userStore, transactionStore, smtpMailer),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
