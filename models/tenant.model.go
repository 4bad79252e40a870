package models

import "gorm.io/gorm"

// Tenant represents an agency tenant. Every domain row is scoped by TenantID.
type Tenant struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Code      string `json:"code" gorm:"unique;not null"`
	Country   string `json:"country"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}
