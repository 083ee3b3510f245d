// cmd/mailtest/main.go
package main

import (
	"context"
	"os"
	"time"

	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/pkg/email"
	"github.com/logicbyfred/gallery-store/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Sends a contact receipt through the configured provider to check mail setup.
func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("Usage: go run ./cmd/mailtest <recipient>")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.New(cfg.Logging)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	emailService := email.NewEmailService(cfg, log)
	err = emailService.SendContactReceipt(ctx, email.ContactData{
		Name:        "Mail test",
		Email:       os.Args[1],
		Subject:     "Mail test",
		Message:     "If you can read this, outgoing mail works.",
		SubmittedAt: time.Now().UTC().Format(time.RFC1123),
	})
	if err != nil {
		log.WithError(err).Fatal("Test email failed")
	}

	log.WithFields(logrus.Fields{
		"provider": cfg.Email.Provider,
		"to":       os.Args[1],
	}).Info("Test email sent")
}
