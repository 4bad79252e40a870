package cohortautomation

import (
	"errors"
	"fmt"
	"lmms/models"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// Completion criteria for certificate issuance: membership COMPLETED,
// attendance at least 80%, at least one assessment passed and none failed,
// vetting CLEARED.
const certificateAttendanceFloor = 80.0

// CheckAndIssueCertificate issues a certificate for a cohort member when all
// completion criteria hold and one has not been issued yet. Both the
// certification_issued flag and an existing Certificate row for the
// (tenant, enrollment) pair guard against double issuance, so a crash
// between insert and flag-set heals on the next call instead of duplicating.
// Returns whether a certificate was issued.
func (s *Service) CheckAndIssueCertificate(ce *models.CohortEnrollment) (bool, error) {
	if ce.Status != models.MembershipCompleted ||
		ce.AttendanceRate < certificateAttendanceFloor ||
		ce.AssessmentsPassed <= 0 || ce.AssessmentsFailed != 0 ||
		ce.VettingStatus != models.VettingCleared ||
		ce.CertificationIssued ||
		ce.EnrollmentID == nil {
		return false, nil
	}

	var existing models.Certificate
	err := s.db.Where("tenant_id = ? AND enrollment_id = ? AND is_deleted = false",
		ce.TenantID, *ce.EnrollmentID).First(&existing).Error
	if err == nil {
		// Certificate row exists but the flag was never set; repair the flag.
		if uerr := s.db.Model(ce).Update("certification_issued", true).Error; uerr != nil {
			return false, uerr
		}
		ce.CertificationIssued = true
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	var cohort models.Cohort
	if err := s.db.First(&cohort, ce.CohortID).Error; err != nil {
		return false, err
	}

	now := s.nowFn()
	cert := models.Certificate{
		TenantID:          ce.TenantID,
		EnrollmentID:      *ce.EnrollmentID,
		CandidateID:       ce.CandidateID,
		CourseID:          cohort.CourseID,
		CertificateNumber: fmt.Sprintf("CERT-%s-%d-%d", cohort.Code, ce.CandidateID, now.UnixMilli()),
		VerificationCode:  generateVerificationCode(),
		Status:            models.CertificateIssued,
		IssuedAt:          now,
	}
	if err := s.db.Create(&cert).Error; err != nil {
		return false, err
	}

	if err := s.db.Model(ce).Update("certification_issued", true).Error; err != nil {
		return false, err
	}
	ce.CertificationIssued = true

	s.logf("Issued certificate %s for candidate %d in cohort %d (%s)",
		cert.CertificateNumber, ce.CandidateID, cohort.ID, cohort.Code)
	return true, nil
}

// CheckPlacementReadiness flags a certified, cleared, completed member as
// ready for job placement. The flag is set once and never reverted.
func (s *Service) CheckPlacementReadiness(ce *models.CohortEnrollment) error {
	if ce.PlacementReady {
		return nil
	}
	if ce.Status != models.MembershipCompleted ||
		ce.AttendanceRate < certificateAttendanceFloor ||
		ce.AssessmentsPassed <= 0 ||
		ce.VettingStatus != models.VettingCleared ||
		!ce.CertificationIssued {
		return nil
	}

	if err := s.db.Model(ce).Update("placement_ready", true).Error; err != nil {
		return err
	}
	ce.PlacementReady = true
	return nil
}

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// generateVerificationCode builds two 13-character random base-36 fragments.
func generateVerificationCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fragment := func() string {
		b := make([]byte, 13)
		for i := range b {
			b[i] = base36Chars[rng.Intn(len(base36Chars))]
		}
		return string(b)
	}
	return fragment() + fragment()
}
