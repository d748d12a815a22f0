// Package gormstore provides the GORM-backed implementation of
// reconcile.Store shared by all synced entity kinds.
//
// The store is generic over the model pointer type; each feature constructs
// one with its own model factory. Owner scoping is applied in every WHERE
// clause, tombstone filtering is explicit (deleted_at IS NULL), and Transact
// maps directly onto a database transaction so the engine's unit-of-work
// contract holds at the store's isolation level.
package gormstore
