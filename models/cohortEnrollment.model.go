package models

import "gorm.io/gorm"

// CohortEnrollment membership statuses
const (
	MembershipApplied   = "APPLIED"
	MembershipEnrolled  = "ENROLLED"
	MembershipCompleted = "COMPLETED"
	MembershipWithdrawn = "WITHDRAWN"
	MembershipRejected  = "REJECTED"
)

// Vetting statuses tracked per candidate per cohort
const (
	VettingPending    = "PENDING"
	VettingInProgress = "IN_PROGRESS"
	VettingCleared    = "CLEARED"
	VettingFlagged    = "FLAGGED"
)

// CohortEnrollment tracks a candidate's membership and progress within one cohort.
// EnrollmentID is a weak back-reference to the canonical Enrollment, set once
// by the approval flow and never re-pointed.
type CohortEnrollment struct {
	gorm.Model
	TenantID     uint   `json:"tenant_id" gorm:"index"`
	CohortID     uint   `json:"cohort_id" gorm:"index;not null"`
	CandidateID  uint   `json:"candidate_id" gorm:"index;not null"`
	EnrollmentID *uint  `json:"enrollment_id" gorm:"index"`
	Status       string `json:"status" gorm:"default:'APPLIED'"`

	AttendanceCount   int     `json:"attendance_count" gorm:"default:0"`
	TotalSessions     int     `json:"total_sessions" gorm:"default:0"`
	AttendanceRate    float64 `json:"attendance_rate" gorm:"default:0"` // percentage 0-100
	AssessmentsPassed int     `json:"assessments_passed" gorm:"default:0"`
	AssessmentsFailed int     `json:"assessments_failed" gorm:"default:0"`

	VettingStatus       string `json:"vetting_status" gorm:"default:'PENDING'"`
	PlacementReady      bool   `json:"placement_ready" gorm:"default:false"`
	CertificationIssued bool   `json:"certification_issued" gorm:"default:false"`

	Cohort Cohort `json:"cohort" gorm:"foreignKey:CohortID"`
}
