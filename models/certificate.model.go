package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate statuses
const (
	CertificateIssued  = "ISSUED"
	CertificateRevoked = "REVOKED"
)

// Certificate represents an issued certificate for a completed enrollment
type Certificate struct {
	gorm.Model
	TenantID          uint      `json:"tenant_id" gorm:"index"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"index;not null"`
	CandidateID       uint      `json:"candidate_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	VerificationCode  string    `json:"verification_code" gorm:"index"`
	Status            string    `json:"status" gorm:"default:'ISSUED'"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `gorm:"default:false"`
}
