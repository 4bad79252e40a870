package utils

import (
	"fmt"
	"lmms/config"
	"lmms/database"
	"lmms/models"
	"lmms/services/cohortautomation"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[COHORT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartDailyLifecycleScan runs the full lifecycle scan once a day. The daily
// pass catches the date-boundary transitions: enrollment opening, training
// start and completion.
func StartDailyLifecycleScan(c *cron.Cron, svc *cohortautomation.Service) {
	c.AddFunc(config.AppConfig.DailyScanCron, func() {
		logScheduler("Running daily cohort lifecycle scan...")
		svc.ProcessCohortLifecycle()
	})
	logScheduler("Daily lifecycle scan scheduled: " + config.AppConfig.DailyScanCron)
}

// StartHourlyLifecycleScan runs the same scan hourly so deadline-triggered
// enrollment closes land within the hour rather than the day.
func StartHourlyLifecycleScan(c *cron.Cron, svc *cohortautomation.Service) {
	c.AddFunc(config.AppConfig.HourlyScanCron, func() {
		logScheduler("Running hourly cohort lifecycle scan...")
		svc.ProcessCohortLifecycle()
	})
	logScheduler("Hourly lifecycle scan scheduled: " + config.AppConfig.HourlyScanCron)
}

// StartCohortStartReminders emails enrolled candidates on the day before
// their cohort begins training. The daily run with a 24-hour lookahead
// window means each cohort is picked up exactly once.
func StartCohortStartReminders(c *cron.Cron) {
	c.AddFunc(config.AppConfig.DailyScanCron, func() {
		logScheduler("Sending cohort start reminders...")
		sendCohortStartReminders()
	})
	logScheduler("Cohort start reminders scheduled: " + config.AppConfig.DailyScanCron)
}

func sendCohortStartReminders() {
	db := database.Database.Db
	now := time.Now()

	var cohorts []models.Cohort
	if err := db.Where("is_deleted = false AND status IN ? AND start_date >= ? AND start_date < ?",
		[]string{models.CohortEnrollmentOpen, models.CohortEnrollmentClosed},
		now, now.Add(24*time.Hour)).Find(&cohorts).Error; err != nil {
		logScheduler(fmt.Sprintf("Error fetching starting cohorts: %v", err))
		return
	}

	for _, cohort := range cohorts {
		var members []models.CohortEnrollment
		if err := db.Where("cohort_id = ? AND status = ?", cohort.ID, models.MembershipEnrolled).
			Find(&members).Error; err != nil {
			logScheduler(fmt.Sprintf("Error fetching members of cohort %d: %v", cohort.ID, err))
			continue
		}

		for _, m := range members {
			var candidate models.User
			if err := db.First(&candidate, m.CandidateID).Error; err != nil {
				continue
			}
			SendCohortStartingEmail(candidate.Email, candidate.Name, cohort.Code, cohort.StartDate)
		}
		logScheduler(fmt.Sprintf("Start reminders sent for cohort %d (%s)", cohort.ID, cohort.Code))
	}
}

// InitializeCohortSchedulers wires both lifecycle scans onto one cron
// instance. Every transition in the scan is a status-guarded conditional
// update, so overlapping daily/hourly runs degrade to no-op writes.
func InitializeCohortSchedulers(svc *cohortautomation.Service) *cron.Cron {
	logScheduler("Initializing cohort schedulers...")

	c := cron.New()

	StartDailyLifecycleScan(c, svc)
	StartHourlyLifecycleScan(c, svc)
	StartCohortStartReminders(c)

	c.Start()

	logScheduler("All cohort schedulers initialized successfully")
	return c
}
