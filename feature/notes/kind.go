package notes

import (
	"strings"

	"focusdeck/core/reconcile"
	"focusdeck/core/utils"
)

const (
	maxTitleLen   = 255
	maxContentLen = 100000
	maxColorLen   = 32
	maxNotesOwned = 2000
)

// Kind adapts notes to the reconcile engine.
type Kind struct{}

func (Kind) Name() string { return "note" }

// Validate requires a non-blank title on create.
func (Kind) Validate(fields map[string]any) error {
	if strings.TrimSpace(utils.ToString(fields["title"])) == "" {
		return &reconcile.ValidationError{Kind: "note", Field: "title", Reason: "must not be empty"}
	}
	return nil
}

// NewRecord builds a note with fields clamped.
func (Kind) NewRecord(ownerID string, fields map[string]any) reconcile.Record {
	n := &Note{
		Syncable: reconcile.NewSyncable(ownerID),
		Title:    utils.Truncate(utils.ToString(fields["title"]), maxTitleLen),
	}
	if v, ok := fields["content"]; ok {
		n.Content = utils.Truncate(utils.ToString(v), maxContentLen)
	}
	if v, ok := fields["color"]; ok {
		n.Color = utils.Truncate(utils.ToString(v), maxColorLen)
	}
	return n
}

// ApplyPartial maps the fields present in an update payload onto columns.
func (Kind) ApplyPartial(fields map[string]any) map[string]any {
	cols := map[string]any{}
	if v, ok := fields["title"]; ok {
		cols["title"] = utils.Truncate(utils.ToString(v), maxTitleLen)
	}
	if v, ok := fields["content"]; ok {
		cols["content"] = utils.Truncate(utils.ToString(v), maxContentLen)
	}
	if v, ok := fields["color"]; ok {
		cols["color"] = utils.Truncate(utils.ToString(v), maxColorLen)
	}
	return cols
}

func (Kind) MaxPerOwner() int64 { return maxNotesOwned }
