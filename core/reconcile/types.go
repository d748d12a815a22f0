package reconcile

import (
	"encoding/json"
	"time"

	"focusdeck/core/utils"

	"github.com/google/uuid"
)

// Record is the view the engine has of a synced entity. Every synced model
// satisfies it by embedding Syncable.
type Record interface {
	// GetID returns the server-assigned identifier.
	GetID() string
	// GetOwnerID returns the owning user identity. Immutable after creation.
	GetOwnerID() string
	// GetUpdatedAt returns the timestamp of the last accepted mutation.
	GetUpdatedAt() time.Time
	// GetDeletedAt returns the tombstone timestamp, or nil for active records.
	GetDeletedAt() *time.Time
}

// Syncable provides the invariant columns shared by every synced entity.
// Embed it in a model struct to make the model reconcilable.
//
// DeletedAt is deliberately a plain *time.Time, not gorm.DeletedAt: tombstones
// are engine semantics, not ORM soft deletes, and active/deleted filtering
// must stay explicit in store queries.
type Syncable struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string     `gorm:"index;size:36;not null" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `gorm:"index" json:"deletedAt,omitempty"`
}

// NewSyncable returns a Syncable for a freshly created record: a new server
// id and both timestamps set to now.
func NewSyncable(ownerID string) Syncable {
	now := time.Now().UTC()
	return Syncable{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Syncable) GetID() string            { return s.ID }
func (s *Syncable) GetOwnerID() string       { return s.OwnerID }
func (s *Syncable) GetUpdatedAt() time.Time  { return s.UpdatedAt }
func (s *Syncable) GetDeletedAt() *time.Time { return s.DeletedAt }

// IsDeleted reports whether the record is a tombstone.
func (s *Syncable) IsDeleted() bool { return s.DeletedAt != nil }

// BatchRequest is one bulk sync submission for a single entity kind.
// Clients accumulate mutations while offline and submit them in one call.
type BatchRequest struct {
	Creates []CreateOp `json:"creates"`
	Updates []UpdateOp `json:"updates"`
	Deletes []DeleteOp `json:"deletes"`
}

// CreateOp creates a new record. ClientID correlates the locally-created
// record with the server id assigned on insert; it lives only for the span of
// one request/response pair. All remaining JSON keys are kind-specific fields.
type CreateOp struct {
	ClientID string
	Fields   map[string]any
}

// UpdateOp is a partial update of one record, addressed by server id or by
// the clientId of a create in the same batch (at least one is required).
// UpdatedAt is the client-clock timestamp used for last-write-wins ordering;
// the zero value means the client supplied none.
type UpdateOp struct {
	ID        string
	ClientID  string
	UpdatedAt time.Time
	Fields    map[string]any
}

// DeleteOp tombstones one record. DeletedAt defaults to the server clock
// when the client supplied none.
type DeleteOp struct {
	ID        string
	ClientID  string
	DeletedAt time.Time
}

// Reserved op keys. Everything else in an op body is a kind-specific field.
const (
	keyID        = "id"
	keyClientID  = "clientId"
	keyUpdatedAt = "updatedAt"
	keyDeletedAt = "deletedAt"
)

// UnmarshalJSON decodes the flat wire shape {"clientId": "...", <fields>...}.
func (op *CreateOp) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw[keyClientID]; ok {
		op.ClientID = utils.ToString(v)
		delete(raw, keyClientID)
	}
	op.Fields = raw
	return nil
}

// UnmarshalJSON decodes the flat wire shape
// {"id"|"clientId": "...", "updatedAt": ..., <fields>...}.
func (op *UpdateOp) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw[keyID]; ok {
		op.ID = utils.ToString(v)
		delete(raw, keyID)
	}
	if v, ok := raw[keyClientID]; ok {
		op.ClientID = utils.ToString(v)
		delete(raw, keyClientID)
	}
	if v, ok := raw[keyUpdatedAt]; ok {
		if t, valid := utils.ToTime(v); valid {
			op.UpdatedAt = t
		}
		delete(raw, keyUpdatedAt)
	}
	op.Fields = raw
	return nil
}

// UnmarshalJSON decodes the flat wire shape
// {"id"|"clientId": "...", "deletedAt": ...}.
func (op *DeleteOp) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw[keyID]; ok {
		op.ID = utils.ToString(v)
	}
	if v, ok := raw[keyClientID]; ok {
		op.ClientID = utils.ToString(v)
	}
	if v, ok := raw[keyDeletedAt]; ok {
		if t, valid := utils.ToTime(v); valid {
			op.DeletedAt = t
		}
	}
	return nil
}

// CreatedRecord pairs an inserted record with the clientId of its originating
// CreateOp so the client can patch its local id mapping.
type CreatedRecord struct {
	Record   Record `json:"record"`
	ClientID string `json:"clientId,omitempty"`
}

// BatchResult is the reconciliation outcome returned to the client. Input
// operations that were dropped or failed in isolation are simply absent; the
// result carries no per-operation error list.
type BatchResult struct {
	Created []CreatedRecord `json:"created"`
	Updated []Record        `json:"updated"`
	Deleted []string        `json:"deleted"`
}
