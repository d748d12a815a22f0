package reconcile

// Kind supplies the entity-specific behavior the generic engine is
// parameterized over. Each synced feature (tasks, notes, siteblock, tabstash)
// implements it once; the ordering, collapsing, and tombstone logic stay in
// the engine.
type Kind interface {
	// Name returns the kind name used in errors and log fields
	// (e.g. "task", "note").
	Name() string

	// Validate checks the required fields of a create payload. A non-nil
	// error (normally a *ValidationError) aborts the whole batch.
	Validate(fields map[string]any) error

	// NewRecord builds a record for an insert: kind defaults applied,
	// over-long fields clamped, Syncable initialized for ownerID.
	// Validate has already accepted the payload.
	NewRecord(ownerID string, fields map[string]any) Record

	// ApplyPartial translates the fields present in an update payload into
	// store column updates, clamping lengths. Fields absent from the payload
	// must be absent from the returned map so untouched columns stay
	// untouched. Unknown keys are ignored.
	ApplyPartial(fields map[string]any) map[string]any

	// MaxPerOwner caps active records per owner on create; 0 means no cap.
	MaxPerOwner() int64
}

// Exclusive is implemented by kinds that enforce a single-active-flag
// invariant: at most one non-deleted record per owner may have the flag set
// (the Task "pinned" invariant). The field name doubles as the store column
// name.
type Exclusive interface {
	Kind

	// ExclusiveField returns the boolean field subject to the invariant.
	ExclusiveField() string

	// ExclusiveSet reports whether the flag is set on rec.
	ExclusiveSet(rec Record) bool
}
