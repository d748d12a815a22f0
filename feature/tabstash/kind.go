package tabstash

import (
	"encoding/json"
	"strings"

	"focusdeck/core/reconcile"
	"focusdeck/core/utils"
)

const (
	maxNameLen      = 255
	maxWindowIDLen  = 64
	maxTabsBytes    = 200000
	maxStashesOwned = 300
)

// Kind adapts tab stashes to the reconcile engine.
type Kind struct{}

func (Kind) Name() string { return "tab_stash" }

// Validate requires a non-blank name on create.
func (Kind) Validate(fields map[string]any) error {
	if strings.TrimSpace(utils.ToString(fields["name"])) == "" {
		return &reconcile.ValidationError{Kind: "tab_stash", Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// NewRecord builds a stash with the tab list serialized.
func (Kind) NewRecord(ownerID string, fields map[string]any) reconcile.Record {
	s := &TabStash{
		Syncable: reconcile.NewSyncable(ownerID),
		Name:     utils.Truncate(utils.ToString(fields["name"]), maxNameLen),
	}
	if v, ok := fields["tabs"]; ok {
		s.Tabs = encodeTabs(v)
	}
	if v, ok := fields["windowId"]; ok {
		s.WindowID = utils.Truncate(utils.ToString(v), maxWindowIDLen)
	}
	return s
}

// ApplyPartial maps the fields present in an update payload onto columns.
func (Kind) ApplyPartial(fields map[string]any) map[string]any {
	cols := map[string]any{}
	if v, ok := fields["name"]; ok {
		cols["name"] = utils.Truncate(utils.ToString(v), maxNameLen)
	}
	if v, ok := fields["tabs"]; ok {
		cols["tabs"] = encodeTabs(v)
	}
	if v, ok := fields["windowId"]; ok {
		cols["window_id"] = utils.Truncate(utils.ToString(v), maxWindowIDLen)
	}
	return cols
}

func (Kind) MaxPerOwner() int64 { return maxStashesOwned }

// encodeTabs serializes the client's tab array to the stored JSON document.
// Oversized stashes are clamped by dropping trailing tabs, never by cutting
// the JSON mid-document.
func encodeTabs(v any) string {
	tabs, ok := v.([]any)
	if !ok {
		if s := utils.ToString(v); json.Valid([]byte(s)) {
			if len(s) <= maxTabsBytes {
				return s
			}
		}
		return "[]"
	}

	for len(tabs) > 0 {
		data, err := json.Marshal(tabs)
		if err != nil {
			return "[]"
		}
		if len(data) <= maxTabsBytes {
			return string(data)
		}
		tabs = tabs[:len(tabs)-1]
	}
	return "[]"
}
