package cohortautomation

import (
	"testing"
	"time"

	"lmms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanEnrollOpenCohort(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "WELD-2026-A",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        10,
		CurrentEnrollment:  3,
		EnrollmentDeadline: now.Add(day(5)),
		StartDate:          now.Add(day(7)),
		EndDate:            now.Add(day(37)),
	})

	decision, err := s.CanEnroll(cohort.ID)
	require.NoError(t, err)
	assert.True(t, decision.CanEnroll)
	assert.Empty(t, decision.Reason)
}

func TestCanEnrollRefusals(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	inTraining := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "A",
		Status:             models.CohortInTraining,
		MaxCapacity:        10,
		EnrollmentDeadline: now.Add(day(5)),
	})
	full := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "B",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        2,
		CurrentEnrollment:  2,
		EnrollmentDeadline: now.Add(day(5)),
	})
	expired := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "C",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        10,
		EnrollmentDeadline: now.Add(-time.Hour),
	})

	decision, err := s.CanEnroll(inTraining.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanEnroll)
	assert.Equal(t, "Cohort is not open for enrollment", decision.Reason)

	decision, err = s.CanEnroll(full.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanEnroll)
	assert.Equal(t, "Cohort is full", decision.Reason)

	decision, err = s.CanEnroll(expired.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanEnroll)
	assert.Equal(t, "Enrollment deadline has passed", decision.Reason)
}

func TestCanEnrollMissingCohort(t *testing.T) {
	s := newTestService(t)

	_, err := s.CanEnroll(999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestIncrementStopsAtCapacity(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "WELD-2026-B",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        3,
		EnrollmentDeadline: now.Add(day(5)),
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, s.IncrementEnrollmentCount(cohort.ID))
	}

	err := s.IncrementEnrollmentCount(cohort.ID)
	assert.ErrorIs(t, err, ErrCohortFull)

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, 3, got.CurrentEnrollment)
}

func TestLastSeatClosesCohort(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "CARE-2026-A",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        50,
		CurrentEnrollment:  49,
		EnrollmentDeadline: now.Add(day(5)),
	})

	require.NoError(t, s.IncrementEnrollmentCount(cohort.ID))

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, 50, got.CurrentEnrollment)
	assert.Equal(t, models.CohortEnrollmentClosed, got.Status)
}

func TestDecrementDoesNotReopen(t *testing.T) {
	s := newTestService(t)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "CARE-2026-B",
		Status:            models.CohortEnrollmentClosed,
		MaxCapacity:       2,
		CurrentEnrollment: 2,
	})

	require.NoError(t, s.DecrementEnrollmentCount(cohort.ID))

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, 1, got.CurrentEnrollment)
	assert.Equal(t, models.CohortEnrollmentClosed, got.Status)
}

func TestDecrementFloorsAtZero(t *testing.T) {
	s := newTestService(t)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID: 1, CourseID: 1, Code: "CARE-2026-C",
		Status:      models.CohortEnrollmentOpen,
		MaxCapacity: 2,
	})

	require.NoError(t, s.DecrementEnrollmentCount(cohort.ID))

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, 0, got.CurrentEnrollment)
}
