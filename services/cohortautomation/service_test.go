package cohortautomation

import (
	"testing"
	"time"

	"lmms/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Cohort{},
		&models.CohortSession{},
		&models.CohortEnrollment{},
		&models.Enrollment{},
		&models.Certificate{},
	))

	return NewService(db)
}

// setClock pins the service clock to a fixed instant.
func setClock(s *Service, at time.Time) {
	s.nowFn = func() time.Time { return at }
}

func createCohort(t *testing.T, s *Service, cohort *models.Cohort) *models.Cohort {
	t.Helper()
	require.NoError(t, s.db.Create(cohort).Error)
	return cohort
}

func reloadCohort(t *testing.T, s *Service, id uint) models.Cohort {
	t.Helper()
	var cohort models.Cohort
	require.NoError(t, s.db.First(&cohort, id).Error)
	return cohort
}

func reloadMember(t *testing.T, s *Service, id uint) models.CohortEnrollment {
	t.Helper()
	var ce models.CohortEnrollment
	require.NoError(t, s.db.First(&ce, id).Error)
	return ce
}
