// Command reminder mails the bond licenses that expire within
// REMINDER_DAYS. Run it daily from cron.
package main

import (
	"time"

	"bonded-wms/config"
	"bonded-wms/database"
	"bonded-wms/logger"
	"bonded-wms/mailer"
	"bonded-wms/services"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	log := logger.Init(config.APP_ENV, config.LogLevel)
	defer log.Sync()

	db, err := database.Open()
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	now := time.Now()
	licenses, err := services.ExpiringLicenses(db, now, config.ReminderDays)
	if err != nil {
		log.Fatal("Failed to load expiring bond licenses", zap.Error(err))
	}
	for _, l := range licenses {
		log.Info("Bond license expiring",
			zap.String("license_number", l.License.LicenseNumber),
			zap.String("warehouse", l.WarehouseName),
			zap.Int("days_left", l.DaysLeft))
	}

	cfg := mailer.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		User:     config.SMTPUser,
		Password: config.SMTPPassword,
		From:     config.ReminderFrom,
		To:       config.ReminderTo,
	}
	sent, err := mailer.SendExpiryReminder(mailer.NewDialer(cfg), cfg, licenses, now)
	if err != nil {
		log.Fatal("Failed to send reminder", zap.Error(err))
	}
	log.Info("Reminder run finished", zap.Int("expiring", len(licenses)), zap.Bool("mail_sent", sent))
}
