package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"assetnotifier/internal/adapter/api"
	"assetnotifier/internal/adapter/api/handler"
	apimiddleware "assetnotifier/internal/adapter/api/middleware"
	"assetnotifier/internal/adapter/api/router"
	"assetnotifier/internal/adapter/repository"
	"assetnotifier/internal/domain/service"
	"assetnotifier/internal/usecase"
	"assetnotifier/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	assetRepo := repository.NewFirestoreAssetRepository(firestoreClient)
	templateRepo := repository.NewFirestoreMailTemplateRepository(firestoreClient)
	publicLinkRepo := repository.NewFirestorePublicLinkRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)
	localeRepo := repository.NewFirestoreLocaleRepository(firestoreClient)

	mailService := service.NewMailAPIService(cfg.MailAPIBaseURL, cfg.MailAPIKey)

	templateUseCase := usecase.NewTemplateUseCase(templateRepo, localeRepo, cfg.EnsureMaxRetries)
	publicLinkUseCase := usecase.NewPublicLinkUseCase(publicLinkRepo)
	recipientUseCase := usecase.NewRecipientUseCase(userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(mailService)
	workflowUseCase := usecase.NewWorkflowUseCase(
		assetRepo,
		settingsRepo,
		templateUseCase,
		publicLinkUseCase,
		recipientUseCase,
		notificationUseCase,
	)

	handler.Setup(workflowUseCase, templateUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	webhookMiddleware := apimiddleware.NewWebhookMiddleware(cfg.WebhookSecret)
	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Setup(e, webhookMiddleware, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
