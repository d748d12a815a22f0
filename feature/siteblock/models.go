package siteblock

import "focusdeck/core/reconcile"

// BlockRule is one site-blocker entry: a domain the extension blocks,
// optionally only during the given schedule.
type BlockRule struct {
	reconcile.Syncable
	Domain   string `gorm:"size:253;not null;index" json:"domain"`
	Schedule string `gorm:"size:255" json:"schedule,omitempty"`
	Enabled  bool   `gorm:"not null;default:true" json:"enabled"`
}

// TableName overrides the GORM table name.
func (BlockRule) TableName() string { return "block_rules" }
