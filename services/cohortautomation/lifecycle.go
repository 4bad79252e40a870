package cohortautomation

import (
	"lmms/models"
	"time"
)

// enrollmentOpenWindow is how far before the start date a published cohort
// opens for enrollment.
const enrollmentOpenWindow = 30 * 24 * time.Hour

// ProcessCohortLifecycle scans all live cohorts and applies at most one
// status advance per cohort. Invoked by the daily and hourly cron triggers.
// Per-cohort failures are logged and the scan moves on; the next run picks
// the cohort up again.
func (s *Service) ProcessCohortLifecycle() {
	now := s.nowFn()

	var cohorts []models.Cohort
	if err := s.db.Where("is_deleted = false AND status IN ?", []string{
		models.CohortPublished,
		models.CohortEnrollmentOpen,
		models.CohortEnrollmentClosed,
		models.CohortInTraining,
	}).Find(&cohorts).Error; err != nil {
		s.logf("Error fetching cohorts: %v", err)
		return
	}

	for i := range cohorts {
		if err := s.processCohort(&cohorts[i], now); err != nil {
			s.logf("Error processing cohort %d (%s): %v", cohorts[i].ID, cohorts[i].Code, err)
		}
	}
}

func (s *Service) processCohort(cohort *models.Cohort, now time.Time) error {
	switch cohort.Status {
	case models.CohortPublished:
		if !now.After(cohort.StartDate) && cohort.StartDate.Sub(now) <= enrollmentOpenWindow {
			return s.transition(cohort, models.CohortPublished, models.CohortEnrollmentOpen, "")
		}

	case models.CohortEnrollmentOpen:
		// Start of training wins over the deadline close when both have passed.
		if !now.Before(cohort.StartDate) {
			return s.transition(cohort, models.CohortEnrollmentOpen, models.CohortInTraining, "")
		}
		if !now.Before(cohort.EnrollmentDeadline) {
			return s.transition(cohort, models.CohortEnrollmentOpen, models.CohortEnrollmentClosed, "Deadline reached")
		}

	case models.CohortEnrollmentClosed:
		if !now.Before(cohort.StartDate) {
			return s.transition(cohort, models.CohortEnrollmentClosed, models.CohortInTraining, "")
		}

	case models.CohortInTraining:
		if !now.Before(cohort.EndDate) {
			return s.completeCohort(cohort)
		}
	}

	return nil
}

// transition advances a cohort's status with the current status in the WHERE
// clause, so a concurrent or replayed scan can never move a cohort backward.
func (s *Service) transition(cohort *models.Cohort, from, to, reason string) error {
	res := s.db.Model(&models.Cohort{}).
		Where("id = ? AND status = ?", cohort.ID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		cohort.Status = to
		if reason != "" {
			s.logf("Cohort %d (%s): %s -> %s (%s)", cohort.ID, cohort.Code, from, to, reason)
		} else {
			s.logf("Cohort %d (%s): %s -> %s", cohort.ID, cohort.Code, from, to)
		}
	}
	return nil
}

// completeCohort moves an in-training cohort to COMPLETED and cascades:
// every ENROLLED member is completed, its canonical enrollment synced, and
// certificate and placement-readiness checks run, then the cohort rollups
// are refreshed.
func (s *Service) completeCohort(cohort *models.Cohort) error {
	res := s.db.Model(&models.Cohort{}).
		Where("id = ? AND status = ?", cohort.ID, models.CohortInTraining).
		Update("status", models.CohortCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}
	cohort.Status = models.CohortCompleted
	s.logf("Cohort %d (%s): %s -> %s", cohort.ID, cohort.Code, models.CohortInTraining, models.CohortCompleted)

	var members []models.CohortEnrollment
	if err := s.db.Where("cohort_id = ? AND status = ?", cohort.ID, models.MembershipEnrolled).
		Find(&members).Error; err != nil {
		return err
	}

	for i := range members {
		ce := &members[i]
		if err := s.db.Model(ce).Update("status", models.MembershipCompleted).Error; err != nil {
			s.logf("Error completing enrollment %d: %v", ce.ID, err)
			continue
		}
		ce.Status = models.MembershipCompleted

		if err := s.SyncEnrollmentStatus(ce.ID); err != nil {
			s.logf("Error syncing enrollment %d: %v", ce.ID, err)
		}
		if _, err := s.CheckAndIssueCertificate(ce); err != nil {
			s.logf("Error issuing certificate for enrollment %d: %v", ce.ID, err)
		}
		if err := s.CheckPlacementReadiness(ce); err != nil {
			s.logf("Error checking placement readiness for enrollment %d: %v", ce.ID, err)
		}
	}

	return s.UpdateCohortMetrics(cohort.ID)
}
