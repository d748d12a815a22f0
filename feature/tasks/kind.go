package tasks

import (
	"strings"

	"focusdeck/core/reconcile"
	"focusdeck/core/utils"
)

// Field limits. Over-long values are clamped, not rejected; only the
// per-owner record cap is an error.
const (
	maxTitleLen   = 255
	maxNotesLen   = 10000
	maxTasksOwned = 5000
)

// Kind adapts tasks to the reconcile engine. It implements
// reconcile.Exclusive for the pinned invariant.
type Kind struct{}

func (Kind) Name() string { return "task" }

// Validate requires a non-blank title on create.
func (Kind) Validate(fields map[string]any) error {
	if strings.TrimSpace(utils.ToString(fields["title"])) == "" {
		return &reconcile.ValidationError{Kind: "task", Field: "title", Reason: "must not be empty"}
	}
	return nil
}

// NewRecord builds a task with defaults applied and fields clamped.
func (Kind) NewRecord(ownerID string, fields map[string]any) reconcile.Record {
	t := &Task{
		Syncable: reconcile.NewSyncable(ownerID),
		Title:    utils.Truncate(utils.ToString(fields["title"]), maxTitleLen),
	}
	if v, ok := fields["notes"]; ok {
		t.Notes = utils.Truncate(utils.ToString(v), maxNotesLen)
	}
	if v, ok := fields["completed"]; ok {
		t.Completed = utils.ToBool(v)
	}
	if v, ok := fields["pinned"]; ok {
		t.Pinned = utils.ToBool(v)
	}
	if v, ok := fields["dueAt"]; ok {
		if due, valid := utils.ToTime(v); valid {
			t.DueAt = &due
		}
	}
	return t
}

// ApplyPartial maps the fields present in an update payload onto columns.
func (Kind) ApplyPartial(fields map[string]any) map[string]any {
	cols := map[string]any{}
	if v, ok := fields["title"]; ok {
		cols["title"] = utils.Truncate(utils.ToString(v), maxTitleLen)
	}
	if v, ok := fields["notes"]; ok {
		cols["notes"] = utils.Truncate(utils.ToString(v), maxNotesLen)
	}
	if v, ok := fields["completed"]; ok {
		cols["completed"] = utils.ToBool(v)
	}
	if v, ok := fields["pinned"]; ok {
		cols["pinned"] = utils.ToBool(v)
	}
	if v, ok := fields["dueAt"]; ok {
		if due, valid := utils.ToTime(v); valid {
			cols["due_at"] = due
		} else {
			// Explicit null clears the due date.
			cols["due_at"] = nil
		}
	}
	return cols
}

func (Kind) MaxPerOwner() int64 { return maxTasksOwned }

// ExclusiveField marks pinned as the single-active-flag column.
func (Kind) ExclusiveField() string { return "pinned" }

// ExclusiveSet reports whether rec is pinned.
func (Kind) ExclusiveSet(rec reconcile.Record) bool {
	t, ok := rec.(*Task)
	return ok && t.Pinned
}
