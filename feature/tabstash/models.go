package tabstash

import "focusdeck/core/reconcile"

// TabStash is a saved browser window: a named set of tabs the extension can
// close now and restore later. The tab list is stored as a JSON document.
type TabStash struct {
	reconcile.Syncable
	Name     string `gorm:"size:255;not null" json:"name"`
	Tabs     string `gorm:"type:mediumtext" json:"tabs,omitempty"`
	WindowID string `gorm:"size:64" json:"windowId,omitempty"`
}

// TableName overrides the GORM table name.
func (TabStash) TableName() string { return "tab_stashes" }
