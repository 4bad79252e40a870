package cohortautomation

import (
	"testing"
	"time"

	"lmms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func TestPublishedOpensWithinWindow(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "WELD-2026-A",
		Status:             models.CohortPublished,
		MaxCapacity:        20,
		EnrollmentDeadline: now.Add(day(8)),
		StartDate:          now.Add(day(10)),
		EndDate:            now.Add(day(40)),
	})

	s.ProcessCohortLifecycle()

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, models.CohortEnrollmentOpen, got.Status)
}

func TestPublishedStaysOutsideWindow(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "WELD-2026-B",
		Status:             models.CohortPublished,
		MaxCapacity:        20,
		EnrollmentDeadline: now.Add(day(58)),
		StartDate:          now.Add(day(60)),
		EndDate:            now.Add(day(90)),
	})

	s.ProcessCohortLifecycle()

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, models.CohortPublished, got.Status)
}

func TestDeadlineClosesEnrollment(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "CARE-2026-A",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        20,
		EnrollmentDeadline: now.Add(-time.Hour),
		StartDate:          now.Add(day(5)),
		EndDate:            now.Add(day(35)),
	})

	s.ProcessCohortLifecycle()

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, models.CohortEnrollmentClosed, got.Status)
}

func TestStartDateWinsOverDeadline(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	// Both the deadline and the start date are behind us. The cohort must go
	// straight into training, not merely close.
	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "CARE-2026-B",
		Status:             models.CohortEnrollmentOpen,
		MaxCapacity:        20,
		EnrollmentDeadline: now.Add(-day(3)),
		StartDate:          now.Add(-day(1)),
		EndDate:            now.Add(day(30)),
	})

	s.ProcessCohortLifecycle()

	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, models.CohortInTraining, got.Status)
}

func TestOneAdvancePerScan(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	// Eligible for PUBLISHED -> ENROLLMENT_OPEN and the deadline has passed
	// too, but a single scan applies one transition only.
	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "HOSP-2026-A",
		Status:             models.CohortPublished,
		MaxCapacity:        20,
		EnrollmentDeadline: now.Add(-day(1)),
		StartDate:          now.Add(day(2)),
		EndDate:            now.Add(day(30)),
	})

	s.ProcessCohortLifecycle()
	assert.Equal(t, models.CohortEnrollmentOpen, reloadCohort(t, s, cohort.ID).Status)

	// The next scan picks up the pending deadline close.
	s.ProcessCohortLifecycle()
	assert.Equal(t, models.CohortEnrollmentClosed, reloadCohort(t, s, cohort.ID).Status)
}

func TestStatusNeverMovesBackward(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           1,
		Code:               "WELD-2026-C",
		Status:             models.CohortInTraining,
		MaxCapacity:        20,
		EnrollmentDeadline: now.Add(-day(10)),
		StartDate:          now.Add(-day(5)),
		EndDate:            now.Add(day(25)),
	})

	// A scan running with a stale clock sees conditions from before the
	// cohort entered training. Nothing may change.
	setClock(s, now.Add(-day(20)))
	s.ProcessCohortLifecycle()
	assert.Equal(t, models.CohortInTraining, reloadCohort(t, s, cohort.ID).Status)

	setClock(s, now)
	s.ProcessCohortLifecycle()
	assert.Equal(t, models.CohortInTraining, reloadCohort(t, s, cohort.ID).Status)
}

func TestCompletionCascades(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           7,
		Code:               "CARE-2026-C",
		Status:             models.CohortInTraining,
		MaxCapacity:        20,
		CurrentEnrollment:  2,
		EnrollmentDeadline: now.Add(-day(40)),
		StartDate:          now.Add(-day(30)),
		EndDate:            now.Add(-time.Hour),
	})

	enrollment := models.Enrollment{TenantID: 1, CandidateID: 10, CourseID: 7}
	require.NoError(t, s.db.Create(&enrollment).Error)

	// One member meets every certificate criterion, the other does not.
	ready := models.CohortEnrollment{
		TenantID:          1,
		CohortID:          cohort.ID,
		CandidateID:       10,
		EnrollmentID:      &enrollment.ID,
		Status:            models.MembershipEnrolled,
		AttendanceRate:    92,
		AssessmentsPassed: 3,
		VettingStatus:     models.VettingCleared,
	}
	require.NoError(t, s.db.Create(&ready).Error)

	lagging := models.CohortEnrollment{
		TenantID:       1,
		CohortID:       cohort.ID,
		CandidateID:    11,
		Status:         models.MembershipEnrolled,
		AttendanceRate: 40,
		VettingStatus:  models.VettingPending,
	}
	require.NoError(t, s.db.Create(&lagging).Error)

	s.ProcessCohortLifecycle()

	assert.Equal(t, models.CohortCompleted, reloadCohort(t, s, cohort.ID).Status)
	assert.Equal(t, models.MembershipCompleted, reloadMember(t, s, ready.ID).Status)
	assert.Equal(t, models.MembershipCompleted, reloadMember(t, s, lagging.ID).Status)

	// Canonical enrollment synced with a completion timestamp.
	var synced models.Enrollment
	require.NoError(t, s.db.First(&synced, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentCompleted, synced.EnrollmentStatus)
	require.NotNil(t, synced.CompletedAt)

	// Certificate and placement readiness for the qualifying member only.
	var certCount int64
	s.db.Model(&models.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&certCount)
	assert.Equal(t, int64(1), certCount)
	assert.True(t, reloadMember(t, s, ready.ID).PlacementReady)
	assert.False(t, reloadMember(t, s, lagging.ID).PlacementReady)
}

func TestCompletedCohortKeepsFinalRollups(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	setClock(s, now)

	cohort := createCohort(t, s, &models.Cohort{
		TenantID:           1,
		CourseID:           7,
		Code:               "CARE-2026-D",
		Status:             models.CohortInTraining,
		MaxCapacity:        20,
		CurrentEnrollment:  1,
		EnrollmentDeadline: now.Add(-day(40)),
		StartDate:          now.Add(-day(30)),
		EndDate:            now.Add(-time.Hour),
		AttendanceRate:     88,
	})

	member := models.CohortEnrollment{
		TenantID:       1,
		CohortID:       cohort.ID,
		CandidateID:    12,
		Status:         models.MembershipEnrolled,
		AttendanceRate: 88,
		VettingStatus:  models.VettingCleared,
	}
	require.NoError(t, s.db.Create(&member).Error)

	s.ProcessCohortLifecycle()

	// Every member left ENROLLED during the cascade; the rollups computed
	// before completion must survive.
	got := reloadCohort(t, s, cohort.ID)
	assert.Equal(t, models.CohortCompleted, got.Status)
	assert.InDelta(t, 88.0, got.AttendanceRate, 0.001)
}
