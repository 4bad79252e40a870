package models

import (
	"time"

	"gorm.io/gorm"
)

// Cohort lifecycle statuses. Transitions are one-way:
// PUBLISHED -> ENROLLMENT_OPEN -> ENROLLMENT_CLOSED -> IN_TRAINING -> COMPLETED
// (ENROLLMENT_OPEN may skip straight to IN_TRAINING when the start date
// arrives before the deadline-triggered close.)
const (
	CohortDraft            = "DRAFT"
	CohortPublished        = "PUBLISHED"
	CohortEnrollmentOpen   = "ENROLLMENT_OPEN"
	CohortEnrollmentClosed = "ENROLLMENT_CLOSED"
	CohortInTraining       = "IN_TRAINING"
	CohortCompleted        = "COMPLETED"
)

// Cohort represents a scheduled, capacity-bounded offering of a course
type Cohort struct {
	gorm.Model
	TenantID           uint      `json:"tenant_id" gorm:"index"`
	CourseID           uint      `json:"course_id" gorm:"index;not null"`
	TrainerID          uint      `json:"trainer_id" gorm:"index"`
	Code               string    `json:"code" gorm:"index;not null"` // used in certificate numbers
	Name               string    `json:"name"`
	Status             string    `json:"status" gorm:"default:'DRAFT'"`
	MaxCapacity        int       `json:"max_capacity" gorm:"default:0"`
	CurrentEnrollment  int       `json:"current_enrollment" gorm:"default:0"` // denormalized counter
	EnrollmentDeadline time.Time `json:"enrollment_deadline"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`

	// Rollups recomputed from enrolled CohortEnrollment rows
	AttendanceRate        float64 `json:"attendance_rate" gorm:"default:0"`
	AssessmentAverage     float64 `json:"assessment_average" gorm:"default:0"`
	VettingCompletionRate float64 `json:"vetting_completion_rate" gorm:"default:0"`
	PlacementReadyCount   int     `json:"placement_ready_count" gorm:"default:0"`

	IsDeleted bool `gorm:"default:false"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}

// CohortSession is a single scheduled training session within a cohort.
// Attendance rates divide by the count of these rows.
type CohortSession struct {
	gorm.Model
	TenantID    uint      `json:"tenant_id" gorm:"index"`
	CohortID    uint      `json:"cohort_id" gorm:"index;not null"`
	SessionDate time.Time `json:"session_date"`
	Topic       string    `json:"topic"`
	IsDeleted   bool      `gorm:"default:false"`
}
