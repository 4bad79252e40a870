package cohortautomation

import (
	"strings"
	"testing"
	"time"

	"lmms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qualifiedMember(t *testing.T, s *Service, cohort *models.Cohort) *models.CohortEnrollment {
	t.Helper()

	enrollment := models.Enrollment{TenantID: cohort.TenantID, CandidateID: 20, CourseID: cohort.CourseID}
	require.NoError(t, s.db.Create(&enrollment).Error)

	ce := models.CohortEnrollment{
		TenantID:          cohort.TenantID,
		CohortID:          cohort.ID,
		CandidateID:       20,
		EnrollmentID:      &enrollment.ID,
		Status:            models.MembershipCompleted,
		AttendanceRate:    95,
		AssessmentsPassed: 4,
		VettingStatus:     models.VettingCleared,
	}
	require.NoError(t, s.db.Create(&ce).Error)
	return &ce
}

func TestIssueCertificate(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 7, Code: "WELD-2026-A",
		Status: models.CohortCompleted,
	})
	ce := qualifiedMember(t, s, cohort)

	issued, err := s.CheckAndIssueCertificate(ce)
	require.NoError(t, err)
	assert.True(t, issued)
	assert.True(t, ce.CertificationIssued)

	var cert models.Certificate
	require.NoError(t, s.db.Where("enrollment_id = ?", *ce.EnrollmentID).First(&cert).Error)
	assert.True(t, strings.HasPrefix(cert.CertificateNumber, "CERT-WELD-2026-A-20-"))
	assert.Len(t, cert.VerificationCode, 26)
	assert.Equal(t, models.CertificateIssued, cert.Status)
	assert.Equal(t, uint(7), cert.CourseID)
}

func TestIssueCertificateOnlyOnce(t *testing.T) {
	s := newTestService(t)
	setClock(s, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 7, Code: "WELD-2026-B",
		Status: models.CohortCompleted,
	})
	ce := qualifiedMember(t, s, cohort)

	issued, err := s.CheckAndIssueCertificate(ce)
	require.NoError(t, err)
	require.True(t, issued)

	issued, err = s.CheckAndIssueCertificate(ce)
	require.NoError(t, err)
	assert.False(t, issued)

	var count int64
	s.db.Model(&models.Certificate{}).Where("enrollment_id = ?", *ce.EnrollmentID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestExistingCertificateRowRepairsFlag(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 7, Code: "WELD-2026-C",
		Status: models.CohortCompleted,
	})
	ce := qualifiedMember(t, s, cohort)

	// Simulate a crash after the insert but before the flag update.
	require.NoError(t, s.db.Create(&models.Certificate{
		TenantID:          1,
		EnrollmentID:      *ce.EnrollmentID,
		CandidateID:       ce.CandidateID,
		CourseID:          7,
		CertificateNumber: "CERT-WELD-2026-C-20-1",
		VerificationCode:  "abc",
		Status:            models.CertificateIssued,
		IssuedAt:          now,
	}).Error)

	issued, err := s.CheckAndIssueCertificate(ce)
	require.NoError(t, err)
	assert.False(t, issued)
	assert.True(t, reloadMember(t, s, ce.ID).CertificationIssued)

	var count int64
	s.db.Model(&models.Certificate{}).Where("enrollment_id = ?", *ce.EnrollmentID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCertificateCriteriaGates(t *testing.T) {
	s := newTestService(t)
	setClock(s, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 7, Code: "WELD-2026-D",
		Status: models.CohortCompleted,
	})

	cases := []struct {
		name   string
		mutate func(ce *models.CohortEnrollment)
	}{
		{"not completed", func(ce *models.CohortEnrollment) { ce.Status = models.MembershipEnrolled }},
		{"low attendance", func(ce *models.CohortEnrollment) { ce.AttendanceRate = 79.9 }},
		{"no passed assessments", func(ce *models.CohortEnrollment) { ce.AssessmentsPassed = 0 }},
		{"failed assessment", func(ce *models.CohortEnrollment) { ce.AssessmentsFailed = 1 }},
		{"vetting not cleared", func(ce *models.CohortEnrollment) { ce.VettingStatus = models.VettingInProgress }},
		{"no linked enrollment", func(ce *models.CohortEnrollment) { ce.EnrollmentID = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := uint(1)
			ce := models.CohortEnrollment{
				TenantID:          1,
				CohortID:          cohort.ID,
				CandidateID:       30,
				EnrollmentID:      &id,
				Status:            models.MembershipCompleted,
				AttendanceRate:    95,
				AssessmentsPassed: 4,
				VettingStatus:     models.VettingCleared,
			}
			tc.mutate(&ce)

			issued, err := s.CheckAndIssueCertificate(&ce)
			require.NoError(t, err)
			assert.False(t, issued)
		})
	}
}

func TestPlacementReadinessRequiresCertificate(t *testing.T) {
	s := newTestService(t)
	setClock(s, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 7, Code: "WELD-2026-E",
		Status: models.CohortCompleted,
	})
	ce := qualifiedMember(t, s, cohort)

	// Not certified yet: no readiness.
	require.NoError(t, s.CheckPlacementReadiness(ce))
	assert.False(t, ce.PlacementReady)

	_, err := s.CheckAndIssueCertificate(ce)
	require.NoError(t, err)

	require.NoError(t, s.CheckPlacementReadiness(ce))
	assert.True(t, ce.PlacementReady)
	assert.True(t, reloadMember(t, s, ce.ID).PlacementReady)
}
