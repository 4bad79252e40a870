// Package cohortautomation drives the cohort lifecycle: deadline- and
// date-triggered status transitions, enrollment counter maintenance,
// enrollment status synchronization, cohort metric rollups, and automatic
// certificate issuance.
package cohortautomation

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Service holds the database handle for all automation operations. It is
// constructed explicitly and passed to the scheduler and controllers; there
// is no package-level instance.
type Service struct {
	db    *gorm.DB
	nowFn func() time.Time
}

// NewService returns a Service bound to the given database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:    db,
		nowFn: time.Now,
	}
}

func (s *Service) logf(format string, args ...interface{}) {
	log.Printf("[COHORT-AUTOMATION] "+format, args...)
}
