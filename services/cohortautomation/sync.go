package cohortautomation

import (
	"errors"
	"fmt"
	"lmms/models"

	"gorm.io/gorm"
)

// enrollmentStatusMap maps a CohortEnrollment status to the canonical
// Enrollment status. Statuses outside the map (APPLIED) do not propagate.
var enrollmentStatusMap = map[string]string{
	models.MembershipEnrolled:  models.EnrollmentEnrolled,
	models.MembershipCompleted: models.EnrollmentCompleted,
	models.MembershipWithdrawn: models.EnrollmentWithdrawn,
	models.MembershipRejected:  models.EnrollmentRejected,
}

// SyncEnrollmentStatus propagates a cohort membership status into the linked
// canonical Enrollment. No-op when there is no link, when the status does not
// map, or when the enrollment already carries the mapped value, so repeated
// calls write nothing.
func (s *Service) SyncEnrollmentStatus(cohortEnrollmentID uint) error {
	var ce models.CohortEnrollment
	if err := s.db.First(&ce, cohortEnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cohort enrollment %d not found", cohortEnrollmentID)
		}
		return err
	}

	if ce.EnrollmentID == nil {
		return nil
	}
	mapped, ok := enrollmentStatusMap[ce.Status]
	if !ok {
		return nil
	}

	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, *ce.EnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("enrollment %d not found", *ce.EnrollmentID)
		}
		return err
	}

	if enrollment.EnrollmentStatus == mapped {
		return nil
	}

	updates := map[string]interface{}{"enrollment_status": mapped}
	if mapped == models.EnrollmentCompleted {
		now := s.nowFn()
		updates["completed_at"] = &now
	}
	return s.db.Model(&enrollment).Updates(updates).Error
}
