package services

import (
	"time"

	"edutrack_go/config"
	"edutrack_go/repositories"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FeeScheduler generates Pending fee rows for every student at the start of
// each month. Generation is idempotent: existing rows for the period are left
// untouched, so restarts and overlapping runs are safe.
type FeeScheduler struct {
	fees *repositories.FeeRepository
	cron *cron.Cron
}

func NewFeeScheduler(db *gorm.DB) *FeeScheduler {
	return &FeeScheduler{
		fees: repositories.NewFeeRepository(db),
		cron: cron.New(),
	}
}

// Start registers the monthly job and runs one catch-up pass for the current
// month so a freshly deployed instance is not a month behind.
func (f *FeeScheduler) Start() {
	if _, err := f.cron.AddFunc("0 1 1 * *", f.generateForCurrentMonth); err != nil {
		logrus.WithError(err).Error("Failed to schedule fee generation")
		return
	}
	f.cron.Start()

	go f.generateForCurrentMonth()

	logrus.Info("Fee scheduler started (monthly, 1st at 01:00)")
}

// Stop halts the cron loop.
func (f *FeeScheduler) Stop() {
	f.cron.Stop()
}

func (f *FeeScheduler) generateForCurrentMonth() {
	now := time.Now()
	month := now.Month().String()
	year := now.Year()

	created, err := f.fees.EnsurePending(month, year, config.AppConfig.DefaultFeeAmount)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"month": month,
			"year":  year,
		}).Error("Fee generation failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"month":   month,
		"year":    year,
		"created": created,
	}).Info("Monthly fee rows generated")
}
