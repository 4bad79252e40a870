package cohortautomation

import (
	"errors"
	"fmt"
	"lmms/models"

	"gorm.io/gorm"
)

// EnrollmentDecision is the structured answer to "can this cohort take
// another candidate". Reason is set only on refusal.
type EnrollmentDecision struct {
	CanEnroll bool   `json:"can_enroll"`
	Reason    string `json:"reason,omitempty"`
}

// ErrCohortFull is returned by IncrementEnrollmentCount when the conditional
// increment finds no free seat.
var ErrCohortFull = errors.New("cohort is full")

// CanEnroll decides whether a cohort can accept a new enrollment. It errors
// only when the cohort does not exist; policy refusals come back as a
// decision with a reason.
func (s *Service) CanEnroll(cohortID uint) (EnrollmentDecision, error) {
	var cohort models.Cohort
	if err := s.db.Where("id = ? AND is_deleted = false", cohortID).First(&cohort).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollmentDecision{}, fmt.Errorf("cohort %d not found", cohortID)
		}
		return EnrollmentDecision{}, err
	}

	if cohort.Status != models.CohortEnrollmentOpen && cohort.Status != models.CohortPublished {
		return EnrollmentDecision{Reason: "Cohort is not open for enrollment"}, nil
	}
	if cohort.CurrentEnrollment >= cohort.MaxCapacity {
		return EnrollmentDecision{Reason: "Cohort is full"}, nil
	}
	if s.nowFn().After(cohort.EnrollmentDeadline) {
		return EnrollmentDecision{Reason: "Enrollment deadline has passed"}, nil
	}

	return EnrollmentDecision{CanEnroll: true}, nil
}

// IncrementEnrollmentCount adds one to the denormalized counter. The free-seat
// check lives in the WHERE clause of the same UPDATE, so two concurrent
// enrollments cannot overshoot capacity. When the increment fills the last
// seat, a second conditional UPDATE closes the cohort; losing that race to
// another writer or to the scan is harmless since both apply the same guard.
func (s *Service) IncrementEnrollmentCount(cohortID uint) error {
	res := s.db.Model(&models.Cohort{}).
		Where("id = ? AND is_deleted = false AND current_enrollment < max_capacity", cohortID).
		Update("current_enrollment", gorm.Expr("current_enrollment + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCohortFull
	}

	closeRes := s.db.Model(&models.Cohort{}).
		Where("id = ? AND status = ? AND current_enrollment >= max_capacity",
			cohortID, models.CohortEnrollmentOpen).
		Update("status", models.CohortEnrollmentClosed)
	if closeRes.Error != nil {
		return closeRes.Error
	}
	if closeRes.RowsAffected > 0 {
		s.logf("Cohort %d: %s -> %s (Capacity reached)",
			cohortID, models.CohortEnrollmentOpen, models.CohortEnrollmentClosed)
	}

	return nil
}

// DecrementEnrollmentCount subtracts one from the counter on withdrawal.
// A closed cohort is not reopened; transitions are one-way.
func (s *Service) DecrementEnrollmentCount(cohortID uint) error {
	return s.db.Model(&models.Cohort{}).
		Where("id = ? AND current_enrollment > 0", cohortID).
		Update("current_enrollment", gorm.Expr("current_enrollment - 1")).Error
}
