package main

import (
	"log"
	"time"

	"railticket/internal/config"
	"railticket/internal/database"
	"railticket/internal/domain"

	"github.com/joho/godotenv"
)

// Purges expired password-reset codes and stale qr login sessions. Run
// from cron; the API itself only checks expiry lazily on read.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now()

	res := db.Where("created_at < ?", now.Add(-cfg.ResetCodeTTL)).Delete(&domain.ResetCode{})
	if res.Error != nil {
		log.Fatal("reset code cleanup failed:", res.Error)
	}
	log.Printf("deleted %d expired reset codes", res.RowsAffected)

	res = db.Where("created_at < ?", now.Add(-cfg.QrSessionTTL)).Delete(&domain.QrSession{})
	if res.Error != nil {
		log.Fatal("qr session cleanup failed:", res.Error)
	}
	log.Printf("deleted %d stale qr sessions", res.RowsAffected)
}
