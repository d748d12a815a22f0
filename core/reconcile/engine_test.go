package reconcile_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"focusdeck/core/reconcile"
	"focusdeck/core/reconcile/gormstore"
	"focusdeck/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testItem is a minimal synced model exercising every engine capability,
// including the exclusive flag.
type testItem struct {
	reconcile.Syncable
	Title  string `gorm:"size:64"`
	Body   string `gorm:"type:text"`
	Pinned bool   `gorm:"not null;default:false"`
}

// testKind adapts testItem. The caps are configurable per test.
type testKind struct {
	maxOwned int64
}

func (testKind) Name() string { return "item" }

func (testKind) Validate(fields map[string]any) error {
	if strings.TrimSpace(utils.ToString(fields["title"])) == "" {
		return &reconcile.ValidationError{Kind: "item", Field: "title", Reason: "must not be empty"}
	}
	return nil
}

func (testKind) NewRecord(ownerID string, fields map[string]any) reconcile.Record {
	it := &testItem{
		Syncable: reconcile.NewSyncable(ownerID),
		Title:    utils.Truncate(utils.ToString(fields["title"]), 64),
	}
	if v, ok := fields["body"]; ok {
		it.Body = utils.ToString(v)
	}
	if v, ok := fields["pinned"]; ok {
		it.Pinned = utils.ToBool(v)
	}
	return it
}

func (testKind) ApplyPartial(fields map[string]any) map[string]any {
	cols := map[string]any{}
	if v, ok := fields["title"]; ok {
		cols["title"] = utils.Truncate(utils.ToString(v), 64)
	}
	if v, ok := fields["body"]; ok {
		cols["body"] = utils.ToString(v)
	}
	if v, ok := fields["pinned"]; ok {
		cols["pinned"] = utils.ToBool(v)
	}
	return cols
}

func (k testKind) MaxPerOwner() int64 { return k.maxOwned }

func (testKind) ExclusiveField() string { return "pinned" }

func (testKind) ExclusiveSet(rec reconcile.Record) bool {
	it, ok := rec.(*testItem)
	return ok && it.Pinned
}

func setupEngine(t *testing.T, kind testKind) (*reconcile.Engine, reconcile.Store, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&testItem{}))

	store := gormstore.New(db, func() *testItem { return &testItem{} })
	return reconcile.New(kind, store, nil), store, db
}

func mustBatch(t *testing.T, raw string) reconcile.BatchRequest {
	t.Helper()
	var req reconcile.BatchRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return req
}

func TestReconcile_CreateMapsClientID(t *testing.T) {
	engine, _, _ := setupEngine(t, testKind{})

	req := mustBatch(t, `{"creates":[{"clientId":"c1","title":"Buy milk"}]}`)
	res, err := engine.Reconcile(context.Background(), "owner-1", req)
	require.NoError(t, err)

	require.Len(t, res.Created, 1)
	assert.Equal(t, "c1", res.Created[0].ClientID)

	item := res.Created[0].Record.(*testItem)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "owner-1", item.OwnerID)
	assert.Equal(t, "Buy milk", item.Title)
	assert.False(t, item.Pinned)
	assert.Nil(t, item.DeletedAt)
}

func TestReconcile_CreateValidationAbortsBatch(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})

	req := mustBatch(t, `{"creates":[{"title":"good"},{"title":"  "}]}`)
	_, err := engine.Reconcile(context.Background(), "owner-1", req)

	var ve *reconcile.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	// The valid create must have rolled back with the batch.
	n, err := store.CountActiveByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReconcile_CreateLimitExceeded(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{maxOwned: 2})

	req := mustBatch(t, `{"creates":[{"title":"a"},{"title":"b"},{"title":"c"}]}`)
	_, err := engine.Reconcile(context.Background(), "owner-1", req)

	var le *reconcile.LimitExceededError
	require.ErrorAs(t, err, &le)
	assert.EqualValues(t, 2, le.Limit)

	n, err := store.CountActiveByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Zero(t, n, "limit failure is batch-fatal, nothing commits")
}

func TestReconcile_UpdateByClientIDInSameBatch(t *testing.T) {
	engine, _, _ := setupEngine(t, testKind{})

	req := mustBatch(t, `{
		"creates":[{"clientId":"c1","title":"task"}],
		"updates":[{"clientId":"c1","pinned":true}]
	}`)
	res, err := engine.Reconcile(context.Background(), "owner-1", req)
	require.NoError(t, err)

	require.Len(t, res.Updated, 1)
	assert.True(t, res.Updated[0].(*testItem).Pinned)
	assert.Equal(t, res.Created[0].Record.GetID(), res.Updated[0].GetID())
}

func TestReconcile_PinExclusivity(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{
		"creates":[
			{"clientId":"a","title":"first","pinned":true},
			{"clientId":"b","title":"second","pinned":true},
			{"clientId":"c","title":"third"}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, res.Created, 3)

	recs, err := store.ListActiveByOwner(ctx, "owner-1")
	require.NoError(t, err)

	var pinned []string
	for _, rec := range recs {
		if rec.(*testItem).Pinned {
			pinned = append(pinned, rec.(*testItem).Title)
		}
	}
	require.Len(t, pinned, 1, "at most one pinned item per owner")
	assert.Equal(t, "second", pinned[0], "the last pin in the batch wins")
}

func TestReconcile_PinExclusivityAcrossBatches(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t,
		`{"creates":[{"clientId":"a","title":"old","pinned":true},{"clientId":"b","title":"new"}]}`))
	require.NoError(t, err)
	newID := res.Created[1].Record.GetID()

	_, err = engine.Reconcile(ctx, "owner-1", mustBatch(t,
		fmt.Sprintf(`{"updates":[{"id":"%s","pinned":true}]}`, newID)))
	require.NoError(t, err)

	recs, err := store.ListActiveByOwner(ctx, "owner-1")
	require.NoError(t, err)
	for _, rec := range recs {
		it := rec.(*testItem)
		assert.Equal(t, it.ID == newID, it.Pinned, "only the last pinned item stays pinned")
	}
}

func TestReconcile_UpdateCollapsing(t *testing.T) {
	for name, order := range map[string]string{
		"newest last":  `[{"id":"%[1]s","updatedAt":5000,"title":"older"},{"id":"%[1]s","updatedAt":10000,"body":"newer"}]`,
		"newest first": `[{"id":"%[1]s","updatedAt":10000,"body":"newer"},{"id":"%[1]s","updatedAt":5000,"title":"older"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			engine, _, _ := setupEngine(t, testKind{})
			ctx := context.Background()

			res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{"creates":[{"title":"original"}]}`))
			require.NoError(t, err)
			id := res.Created[0].Record.GetID()

			res, err = engine.Reconcile(ctx, "owner-1", mustBatch(t,
				fmt.Sprintf(`{"updates":%s}`, fmt.Sprintf(order, id))))
			require.NoError(t, err)

			require.Len(t, res.Updated, 1, "competing updates collapse to one")
			item := res.Updated[0].(*testItem)
			assert.Equal(t, "newer", item.Body, "fields of the latest update apply")
			assert.Equal(t, "original", item.Title, "fields of the losing update do not")
		})
	}
}

func TestReconcile_PartialUpdateLeavesOtherFields(t *testing.T) {
	engine, _, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t,
		`{"creates":[{"title":"keep me","body":"keep me too"}]}`))
	require.NoError(t, err)
	id := res.Created[0].Record.GetID()

	res, err = engine.Reconcile(ctx, "owner-1", mustBatch(t,
		fmt.Sprintf(`{"updates":[{"id":"%s","body":"changed"}]}`, id)))
	require.NoError(t, err)

	item := res.Updated[0].(*testItem)
	assert.Equal(t, "keep me", item.Title)
	assert.Equal(t, "changed", item.Body)
}

func TestReconcile_DeletePrecedence(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{"creates":[{"title":"t1"}]}`))
	require.NoError(t, err)
	id := res.Created[0].Record.GetID()

	_, err = engine.Reconcile(ctx, "owner-1", mustBatch(t,
		fmt.Sprintf(`{"deletes":[{"id":"%s","deletedAt":"2024-01-02T00:00:00Z"}]}`, id)))
	require.NoError(t, err)

	t.Run("older update is discarded", func(t *testing.T) {
		res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t,
			fmt.Sprintf(`{"updates":[{"id":"%s","title":"x","updatedAt":"2024-01-01T00:00:00Z"}]}`, id)))
		require.NoError(t, err)

		// The tombstone is returned unchanged.
		require.Len(t, res.Updated, 1)
		item := res.Updated[0].(*testItem)
		assert.Equal(t, "t1", item.Title)
		assert.NotNil(t, item.DeletedAt)
	})

	t.Run("equal timestamp loses too", func(t *testing.T) {
		res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t,
			fmt.Sprintf(`{"updates":[{"id":"%s","title":"x","updatedAt":"2024-01-02T00:00:00Z"}]}`, id)))
		require.NoError(t, err)
		assert.NotNil(t, res.Updated[0].(*testItem).DeletedAt)
	})

	t.Run("strictly newer update resurrects", func(t *testing.T) {
		res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t,
			fmt.Sprintf(`{"updates":[{"id":"%s","title":"revived","updatedAt":"2024-01-03T00:00:00Z"}]}`, id)))
		require.NoError(t, err)

		item := res.Updated[0].(*testItem)
		assert.Equal(t, "revived", item.Title)
		assert.Nil(t, item.DeletedAt)

		rec, err := store.FindByID(ctx, "owner-1", id)
		require.NoError(t, err)
		assert.Nil(t, rec.GetDeletedAt())
	})
}

func TestReconcile_DeleteIsIdempotent(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{"creates":[{"title":"t"}]}`))
	require.NoError(t, err)
	id := res.Created[0].Record.GetID()

	del := fmt.Sprintf(`{"deletes":[{"id":"%s","deletedAt":"2024-06-01T00:00:00Z"}]}`, id)
	res, err = engine.Reconcile(ctx, "owner-1", mustBatch(t, del))
	require.NoError(t, err)
	assert.Equal(t, []string{id}, res.Deleted)

	rec, err := store.FindByID(ctx, "owner-1", id)
	require.NoError(t, err)
	first := *rec.GetDeletedAt()

	// Same delete again, and an earlier one: the tombstone stays put.
	for _, raw := range []string{del,
		fmt.Sprintf(`{"deletes":[{"id":"%s","deletedAt":"2024-01-01T00:00:00Z"}]}`, id)} {
		res, err = engine.Reconcile(ctx, "owner-1", mustBatch(t, raw))
		require.NoError(t, err)
		assert.Equal(t, []string{id}, res.Deleted)

		rec, err = store.FindByID(ctx, "owner-1", id)
		require.NoError(t, err)
		assert.True(t, rec.GetDeletedAt().Equal(first), "deletedAt unchanged by repeat delete")
	}
}

func TestReconcile_DeleteWithoutTimestampUsesNow(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{"creates":[{"title":"t"}]}`))
	require.NoError(t, err)
	id := res.Created[0].Record.GetID()

	before := time.Now().UTC().Add(-time.Second)
	_, err = engine.Reconcile(ctx, "owner-1", mustBatch(t, fmt.Sprintf(`{"deletes":[{"id":"%s"}]}`, id)))
	require.NoError(t, err)

	rec, err := store.FindByID(ctx, "owner-1", id)
	require.NoError(t, err)
	require.NotNil(t, rec.GetDeletedAt())
	assert.True(t, rec.GetDeletedAt().After(before))
}

func TestReconcile_DeleteByClientIDInSameBatch(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{
		"creates":[{"clientId":"c1","title":"ephemeral"}],
		"deletes":[{"clientId":"c1"}]
	}`))
	require.NoError(t, err)
	require.Len(t, res.Deleted, 1)
	assert.Equal(t, res.Created[0].Record.GetID(), res.Deleted[0])

	n, err := store.CountActiveByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReconcile_UnresolvableOpsAreDropped(t *testing.T) {
	engine, _, _ := setupEngine(t, testKind{})

	res, err := engine.Reconcile(context.Background(), "owner-1", mustBatch(t, `{
		"updates":[{"clientId":"never-created","title":"x"}],
		"deletes":[{"clientId":"never-created"}]
	}`))
	require.NoError(t, err, "unknown clientIds are not an error")
	assert.Empty(t, res.Updated)
	assert.Empty(t, res.Deleted)
}

func TestReconcile_MissingRecordIsIsolated(t *testing.T) {
	engine, _, _ := setupEngine(t, testKind{})

	res, err := engine.Reconcile(context.Background(), "owner-1", mustBatch(t, `{
		"creates":[{"clientId":"c1","title":"real"}],
		"updates":[{"id":"no-such-id","title":"x"},{"clientId":"c1","body":"applied"}],
		"deletes":[{"id":"also-missing"}]
	}`))
	require.NoError(t, err, "missing records do not fail the batch")
	require.Len(t, res.Updated, 1)
	assert.Equal(t, "applied", res.Updated[0].(*testItem).Body)
	assert.Empty(t, res.Deleted)
}

func TestReconcile_CrossOwnerIsolation(t *testing.T) {
	engine, store, _ := setupEngine(t, testKind{})
	ctx := context.Background()

	res, err := engine.Reconcile(ctx, "owner-1", mustBatch(t, `{"creates":[{"title":"mine"}]}`))
	require.NoError(t, err)
	id := res.Created[0].Record.GetID()

	attack, err := engine.Reconcile(ctx, "owner-2", mustBatch(t, fmt.Sprintf(`{
		"updates":[{"id":"%[1]s","title":"stolen"}],
		"deletes":[{"id":"%[1]s"}]
	}`, id)))
	require.NoError(t, err)
	assert.Empty(t, attack.Updated)
	assert.Empty(t, attack.Deleted)

	rec, err := store.FindByID(ctx, "owner-1", id)
	require.NoError(t, err)
	assert.Equal(t, "mine", rec.(*testItem).Title)
	assert.Nil(t, rec.GetDeletedAt())
}

func TestReconcile_EmptyBatch(t *testing.T) {
	engine, _, _ := setupEngine(t, testKind{})

	res, err := engine.Reconcile(context.Background(), "owner-1", reconcile.BatchRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Empty(t, res.Updated)
	assert.Empty(t, res.Deleted)
}
