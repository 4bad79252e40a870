package cohortautomation

import (
	"lmms/models"
)

// UpdateCohortMetrics recomputes a cohort's rollups from its ENROLLED
// membership rows. A cohort with no enrolled students keeps its last computed
// values; the completion cascade relies on this to preserve final rollups
// after every member moves to COMPLETED.
func (s *Service) UpdateCohortMetrics(cohortID uint) error {
	var members []models.CohortEnrollment
	if err := s.db.Where("cohort_id = ? AND status = ?", cohortID, models.MembershipEnrolled).
		Find(&members).Error; err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}

	var attendanceSum float64
	var passed, failed, cleared, placementReady int
	for _, m := range members {
		attendanceSum += m.AttendanceRate
		passed += m.AssessmentsPassed
		failed += m.AssessmentsFailed
		if m.VettingStatus == models.VettingCleared {
			cleared++
		}
		if m.PlacementReady {
			placementReady++
		}
	}

	enrolled := float64(len(members))
	passPct := 0.0
	if passed+failed > 0 {
		passPct = float64(passed) / float64(passed+failed) * 100
	}

	return s.db.Model(&models.Cohort{}).Where("id = ?", cohortID).Updates(map[string]interface{}{
		"attendance_rate":         attendanceSum / enrolled,
		"assessment_average":      passPct,
		"vetting_completion_rate": float64(cleared) / enrolled * 100,
		"placement_ready_count":   placementReady,
	}).Error
}
