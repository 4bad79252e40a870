package models

import "gorm.io/gorm"

// Course represents a training course offered by the agency
type Course struct {
	gorm.Model
	TenantID    uint   `json:"tenant_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"` // e.g. CONSTRUCTION, HOSPITALITY, CAREGIVING
	Duration    int64  `json:"duration" gorm:"default:0"`     // duration in hours
	Status      string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	IsDeleted   bool   `gorm:"default:false"`
}
