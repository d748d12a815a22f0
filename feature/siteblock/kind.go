package siteblock

import (
	"strings"

	"focusdeck/core/reconcile"
	"focusdeck/core/utils"
)

const (
	// RFC 1035 caps a hostname at 253 octets.
	maxDomainLen   = 253
	maxScheduleLen = 255
	maxRulesOwned  = 500
)

// Kind adapts block rules to the reconcile engine.
type Kind struct{}

func (Kind) Name() string { return "block_rule" }

// Validate requires a non-blank domain on create.
func (Kind) Validate(fields map[string]any) error {
	if normalizeDomain(utils.ToString(fields["domain"])) == "" {
		return &reconcile.ValidationError{Kind: "block_rule", Field: "domain", Reason: "must not be empty"}
	}
	return nil
}

// NewRecord builds a rule with the domain normalized and enabled defaulting
// to true.
func (Kind) NewRecord(ownerID string, fields map[string]any) reconcile.Record {
	r := &BlockRule{
		Syncable: reconcile.NewSyncable(ownerID),
		Domain:   utils.Truncate(normalizeDomain(utils.ToString(fields["domain"])), maxDomainLen),
		Enabled:  true,
	}
	if v, ok := fields["schedule"]; ok {
		r.Schedule = utils.Truncate(utils.ToString(v), maxScheduleLen)
	}
	if v, ok := fields["enabled"]; ok {
		r.Enabled = utils.ToBool(v)
	}
	return r
}

// ApplyPartial maps the fields present in an update payload onto columns.
func (Kind) ApplyPartial(fields map[string]any) map[string]any {
	cols := map[string]any{}
	if v, ok := fields["domain"]; ok {
		if domain := normalizeDomain(utils.ToString(v)); domain != "" {
			cols["domain"] = utils.Truncate(domain, maxDomainLen)
		}
	}
	if v, ok := fields["schedule"]; ok {
		cols["schedule"] = utils.Truncate(utils.ToString(v), maxScheduleLen)
	}
	if v, ok := fields["enabled"]; ok {
		cols["enabled"] = utils.ToBool(v)
	}
	return cols
}

func (Kind) MaxPerOwner() int64 { return maxRulesOwned }

// normalizeDomain lowercases and strips scheme, path, and surrounding
// whitespace so "HTTPS://News.Example.com/feed" and "news.example.com" block
// the same site.
func normalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return strings.TrimSuffix(d, ".")
}
