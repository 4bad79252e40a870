package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses (canonical, course-level)
const (
	EnrollmentEnrolled  = "ENROLLED"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentWithdrawn = "WITHDRAWN"
	EnrollmentRejected  = "REJECTED"
)

// Payment statuses
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentWaived  = "WAIVED"
)

// Enrollment is the tenant-wide canonical record of a candidate's
// participation in a course, independent of cohort. At most one exists per
// (candidate, course) pair; the approval flow checks before inserting.
type Enrollment struct {
	gorm.Model
	TenantID         uint       `json:"tenant_id" gorm:"index"`
	CandidateID      uint       `json:"candidate_id" gorm:"index;not null"`
	CourseID         uint       `json:"course_id" gorm:"index;not null"`
	EnrollmentStatus string     `json:"enrollment_status" gorm:"default:'ENROLLED'"`
	PaymentStatus    string     `json:"payment_status" gorm:"default:'PENDING'"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
