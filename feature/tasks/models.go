package tasks

import (
	"time"

	"focusdeck/core/reconcile"
)

// Task is a to-do item synced between the web client and the extension.
// At most one non-deleted task per owner may be pinned.
type Task struct {
	reconcile.Syncable
	Title     string     `gorm:"size:255;not null" json:"title"`
	Notes     string     `gorm:"type:text" json:"notes,omitempty"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	Pinned    bool       `gorm:"not null;default:false" json:"pinned"`
	DueAt     *time.Time `json:"dueAt,omitempty"`
}

// TableName overrides the GORM table name.
func (Task) TableName() string { return "tasks" }
