package cohortautomation

import (
	"testing"
	"time"

	"lmms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncPropagatesStatus(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	setClock(s, now)

	enrollment := models.Enrollment{TenantID: 1, CandidateID: 5, CourseID: 3}
	require.NoError(t, s.db.Create(&enrollment).Error)

	ce := models.CohortEnrollment{
		TenantID:     1,
		CohortID:     1,
		CandidateID:  5,
		EnrollmentID: &enrollment.ID,
		Status:       models.MembershipWithdrawn,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	require.NoError(t, s.SyncEnrollmentStatus(ce.ID))

	var got models.Enrollment
	require.NoError(t, s.db.First(&got, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentWithdrawn, got.EnrollmentStatus)
	assert.Nil(t, got.CompletedAt)
}

func TestSyncCompletedSetsTimestamp(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	setClock(s, now)

	enrollment := models.Enrollment{TenantID: 1, CandidateID: 5, CourseID: 3}
	require.NoError(t, s.db.Create(&enrollment).Error)

	ce := models.CohortEnrollment{
		TenantID:     1,
		CohortID:     1,
		CandidateID:  5,
		EnrollmentID: &enrollment.ID,
		Status:       models.MembershipCompleted,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	require.NoError(t, s.SyncEnrollmentStatus(ce.ID))

	var got models.Enrollment
	require.NoError(t, s.db.First(&got, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentCompleted, got.EnrollmentStatus)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, now.Unix(), got.CompletedAt.Unix())
}

func TestSyncIsIdempotent(t *testing.T) {
	s := newTestService(t)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	setClock(s, now)

	enrollment := models.Enrollment{TenantID: 1, CandidateID: 5, CourseID: 3}
	require.NoError(t, s.db.Create(&enrollment).Error)

	ce := models.CohortEnrollment{
		TenantID:     1,
		CohortID:     1,
		CandidateID:  5,
		EnrollmentID: &enrollment.ID,
		Status:       models.MembershipCompleted,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	require.NoError(t, s.SyncEnrollmentStatus(ce.ID))

	var first models.Enrollment
	require.NoError(t, s.db.First(&first, enrollment.ID).Error)

	// A later sync with a later clock must not touch the row again.
	setClock(s, now.Add(48*time.Hour))
	require.NoError(t, s.SyncEnrollmentStatus(ce.ID))

	var second models.Enrollment
	require.NoError(t, s.db.First(&second, enrollment.ID).Error)
	assert.Equal(t, first.EnrollmentStatus, second.EnrollmentStatus)
	assert.Equal(t, first.CompletedAt.Unix(), second.CompletedAt.Unix())
	assert.Equal(t, first.UpdatedAt.Unix(), second.UpdatedAt.Unix())
}

func TestSyncSkipsUnlinkedMembership(t *testing.T) {
	s := newTestService(t)

	ce := models.CohortEnrollment{
		TenantID:    1,
		CohortID:    1,
		CandidateID: 5,
		Status:      models.MembershipEnrolled,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	assert.NoError(t, s.SyncEnrollmentStatus(ce.ID))
}

func TestSyncSkipsAppliedStatus(t *testing.T) {
	s := newTestService(t)

	enrollment := models.Enrollment{TenantID: 1, CandidateID: 5, CourseID: 3}
	require.NoError(t, s.db.Create(&enrollment).Error)

	ce := models.CohortEnrollment{
		TenantID:     1,
		CohortID:     1,
		CandidateID:  5,
		EnrollmentID: &enrollment.ID,
		Status:       models.MembershipApplied,
	}
	require.NoError(t, s.db.Create(&ce).Error)

	require.NoError(t, s.SyncEnrollmentStatus(ce.ID))

	var got models.Enrollment
	require.NoError(t, s.db.First(&got, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentEnrolled, got.EnrollmentStatus)
}

func TestSyncMissingMembership(t *testing.T) {
	s := newTestService(t)

	err := s.SyncEnrollmentStatus(12345)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
