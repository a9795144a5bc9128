package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/threadcraft/boutique-api/config"
	"github.com/threadcraft/boutique-api/events"
	"github.com/threadcraft/boutique-api/mailer"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/routes"
	"github.com/threadcraft/boutique-api/uploader"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("starting boutique API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("BOUTIQUE_JWT_SECRET must be set")
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.AddressEntry{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Fatalf("Kafka producer init failed: %v", err)
	}
	defer publisher.Close()

	mail := mailer.New(cfg.Mail.APIURL, cfg.Mail.APIKey, cfg.Mail.From, cfg.Mail.To)
	if !mail.Enabled() {
		log.Println("mail API not configured, order notifications disabled")
	}

	r2, err := uploader.NewR2(context.Background(), uploader.R2Config{
		AccountID: cfg.R2.AccountID,
		AccessKey: cfg.R2.AccessKey,
		SecretKey: cfg.R2.SecretKey,
		Bucket:    cfg.R2.Bucket,
		PublicURL: cfg.R2.PublicURL,
	})
	if err != nil {
		log.Fatalf("R2 uploader init failed: %v", err)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32 MB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// serve uploaded product images
	r.Static(cfg.Uploads.PublicPath, cfg.Uploads.Dir)

	routes.SetupRoutes(r, routes.Deps{
		DB:           db,
		JWTSecret:    []byte(cfg.JWTSecret),
		HomeDistrict: cfg.Shipping.HomeDistrict,
		Mailer:       mail,
		Publisher:    publisher,
		UploadDir:    cfg.Uploads.Dir,
		UploadPath:   cfg.Uploads.PublicPath,
		R2:           r2,
	})

	// nightly image backup at 2 AM, retention from config
	retention := time.Duration(cfg.Uploads.RetentionDays) * 24 * time.Hour
	go startDailyBackupAtFixedTime(cfg.Uploads.Dir, cfg.Uploads.BackupDir, retention, 2, 0)

	log.Printf("server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM connection.
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	return db
}

// startDailyBackupAtFixedTime backs up uploads daily at a fixed hour and
// removes backups older than the retention window.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("next uploads backup scheduled at %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("failed to back up uploads: %v", err)
		} else {
			log.Printf("uploads backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder.
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than the retention window.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("removed old backup: %s", folderPath)
			}
		}
	}
}
