package models

import (
	"time"

	"gorm.io/gorm"
)

// JobPlacement statuses
const (
	PlacementProposed  = "PROPOSED"
	PlacementConfirmed = "CONFIRMED"
	PlacementCompleted = "COMPLETED"
	PlacementCancelled = "CANCELLED"
)

// JobPlacement records a candidate placed into a job abroad by a broker
type JobPlacement struct {
	gorm.Model
	TenantID     uint       `json:"tenant_id" gorm:"index"`
	CandidateID  uint       `json:"candidate_id" gorm:"index;not null"`
	BrokerID     uint       `json:"broker_id" gorm:"index;not null"`
	Reference    string     `json:"reference" gorm:"unique"` // uuid, quoted to employers
	EmployerName string     `json:"employer_name"`
	Country      string     `json:"country"`
	Position     string     `json:"position"`
	Salary       float64    `json:"salary" gorm:"default:0"`
	Status       string     `json:"status" gorm:"default:'PROPOSED'"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
	IsDeleted    bool       `gorm:"default:false"`
}
