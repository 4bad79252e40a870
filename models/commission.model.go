package models

import "gorm.io/gorm"

// BrokerCommission statuses
const (
	CommissionPending  = "PENDING"
	CommissionApproved = "APPROVED"
	CommissionPaid     = "PAID"
)

// BrokerCommission is owed to a broker for a confirmed job placement
type BrokerCommission struct {
	gorm.Model
	TenantID    uint    `json:"tenant_id" gorm:"index"`
	PlacementID uint    `json:"placement_id" gorm:"index;not null"`
	BrokerID    uint    `json:"broker_id" gorm:"index;not null"`
	Rate        float64 `json:"rate" gorm:"default:0"` // percent of salary
	Amount      float64 `json:"amount" gorm:"default:0"`
	Status      string  `json:"status" gorm:"default:'PENDING'"`
	IsDeleted   bool    `gorm:"default:false"`
}
