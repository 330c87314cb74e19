package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID          uint        `gorm:"primaryKey"`
	UserID      uint        `gorm:"index;not null"`
	UserName    string      `gorm:"size:100;not null"`
	EntityType  string      `gorm:"size:40;index;not null"` // sale, inventory_output, goat...
	EntityID    uint        `gorm:"index;not null"`
	Action      AuditAction `gorm:"size:10;not null"`
	Description string      `gorm:"size:500"`
	BeforeData  string      `gorm:"type:jsonb;default:'null'"`
	AfterData   string      `gorm:"type:jsonb;default:'null'"`
	CreatedAt   time.Time   `gorm:"index"`
}
