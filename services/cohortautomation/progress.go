package cohortautomation

import (
	"errors"
	"fmt"
	"lmms/models"

	"gorm.io/gorm"
)

// UpdateStudentProgress is the entry point after an attendance or assessment
// event. It recomputes the member's session totals and attendance rate,
// persists them, then runs the certificate check, the placement-readiness
// check, and the cohort rollup refresh, in that order.
func (s *Service) UpdateStudentProgress(cohortEnrollmentID uint) error {
	var ce models.CohortEnrollment
	if err := s.db.First(&ce, cohortEnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cohort enrollment %d not found", cohortEnrollmentID)
		}
		return err
	}

	var totalSessions int64
	if err := s.db.Model(&models.CohortSession{}).
		Where("cohort_id = ? AND is_deleted = false", ce.CohortID).
		Count(&totalSessions).Error; err != nil {
		return err
	}

	attendanceRate := 0.0
	if totalSessions > 0 {
		attendanceRate = float64(ce.AttendanceCount) / float64(totalSessions) * 100
	}

	if err := s.db.Model(&ce).Updates(map[string]interface{}{
		"total_sessions":  totalSessions,
		"attendance_rate": attendanceRate,
	}).Error; err != nil {
		return err
	}
	ce.TotalSessions = int(totalSessions)
	ce.AttendanceRate = attendanceRate

	if _, err := s.CheckAndIssueCertificate(&ce); err != nil {
		return err
	}
	if err := s.CheckPlacementReadiness(&ce); err != nil {
		return err
	}
	return s.UpdateCohortMetrics(ce.CohortID)
}
