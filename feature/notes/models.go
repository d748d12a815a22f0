package notes

import "focusdeck/core/reconcile"

// Note is a free-form text note synced between client surfaces.
type Note struct {
	reconcile.Syncable
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:mediumtext" json:"content,omitempty"`
	Color   string `gorm:"size:32" json:"color,omitempty"`
}

// TableName overrides the GORM table name.
func (Note) TableName() string { return "notes" }
