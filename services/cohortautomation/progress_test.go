package cohortautomation

import (
	"testing"
	"time"

	"lmms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRecomputesAttendance(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "HOSP-2026-A",
		Status: models.CohortInTraining,
	})

	for i := 0; i < 4; i++ {
		require.NoError(t, s.db.Create(&models.CohortSession{
			TenantID:    1,
			CohortID:    cohort.ID,
			SessionDate: now.Add(-day(i)),
		}).Error)
	}

	ce := models.CohortEnrollment{
		TenantID:        1,
		CohortID:        cohort.ID,
		CandidateID:     90,
		Status:          models.MembershipEnrolled,
		AttendanceCount: 3,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	require.NoError(t, s.UpdateStudentProgress(ce.ID))

	got := reloadMember(t, s, ce.ID)
	assert.Equal(t, 4, got.TotalSessions)
	assert.InDelta(t, 75.0, got.AttendanceRate, 0.001)

	// Cohort rollup refreshed from the single enrolled member.
	assert.InDelta(t, 75.0, reloadCohort(t, s, cohort.ID).AttendanceRate, 0.001)
}

func TestProgressWithNoSessions(t *testing.T) {
	s := newTestService(t)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "HOSP-2026-B",
		Status: models.CohortInTraining,
	})

	ce := models.CohortEnrollment{
		TenantID:    1,
		CohortID:    cohort.ID,
		CandidateID: 91,
		Status:      models.MembershipEnrolled,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	require.NoError(t, s.UpdateStudentProgress(ce.ID))

	got := reloadMember(t, s, ce.ID)
	assert.Equal(t, 0, got.TotalSessions)
	assert.InDelta(t, 0.0, got.AttendanceRate, 0.001)
}

func TestProgressMissingMembership(t *testing.T) {
	s := newTestService(t)

	err := s.UpdateStudentProgress(4242)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
