package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin     = "ADMIN"
	RoleTrainer   = "TRAINER"
	RoleCandidate = "CANDIDATE"
	RoleBroker    = "BROKER"
)

type User struct {
	gorm.Model
	TenantID         uint      `json:"tenant_id" gorm:"index"`
	ProfileImage     string    `gorm:"default:''"`
	Name             string    `gorm:"default:''"`
	Email            string    `gorm:"unique;not null"`
	Mobile           string    `gorm:"default:''"`
	Role             string    `gorm:"default:'CANDIDATE'"` // ADMIN, TRAINER, CANDIDATE, BROKER
	Password         string    `gorm:"not null"`
	PassportNumber   string    `json:"passport_number"`
	Nationality      string    `json:"nationality"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	IsMobileVerified bool      `gorm:"default:false"`
	IsEmailVerified  bool      `gorm:"default:false"`
	LastLogin        time.Time `gorm:"default:NULL"`
	IsBlocked        bool      `gorm:"default:false"`
	IsDeleted        bool      `gorm:"default:false"`
}
