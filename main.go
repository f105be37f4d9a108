package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hyemin916/drip-drop-dev/api"
	"github.com/hyemin916/drip-drop-dev/config"
	"github.com/hyemin916/drip-drop-dev/database"
	"github.com/hyemin916/drip-drop-dev/filestore"
	"github.com/hyemin916/drip-drop-dev/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	stores, err := openStores(c)
	if err != nil {
		fmt.Printf("Error opening content storage: %v\n", err)
		os.Exit(1)
	}

	blobs, err := services.NewBlobStore(context.Background(), c)
	if err != nil {
		fmt.Printf("Error initializing image storage: %v\n", err)
		os.Exit(1)
	}
	images := services.NewImageService(blobs)

	gate := services.NewAccessGate(c)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(stores, images, gate, c)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openStores picks the content backend: Postgres by default, plain markdown
// files when STORAGE_BACKEND=markdown.
func openStores(c map[string]string) (api.Stores, error) {
	backend := config.GetString(c, config.KeyStorageBackend, "postgres")

	switch backend {
	case "markdown":
		contentDir := config.GetString(c, config.KeyContentDir, "content/posts")
		fmt.Printf("Using markdown content from %s\n", contentDir)
		store, err := filestore.New(contentDir)
		if err != nil {
			return nil, err
		}
		return store, nil

	case "postgres":
		db, err := openPostgres(c)
		if err != nil {
			return nil, err
		}
		return database.New(db), nil

	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q", backend)
	}
}

func openPostgres(c map[string]string) (*gorm.DB, error) {
	connStr := config.GetString(c, config.KeyDatabaseURL, "")
	if connStr == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
