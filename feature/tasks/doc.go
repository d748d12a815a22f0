// Package tasks implements the task list feature.
//
// Tasks are the richest synced kind: besides the usual offline batch
// reconciliation they carry the pin invariant, enforced by the reconcile
// engine as a write side effect: at most one non-deleted task per owner is
// pinned at any time, no matter how many pin operations a batch contains.
//
// # Components
//
//   - Kind: adapts tasks to the generic reconcile engine (validation,
//     defaults, clamping, the pinned exclusive flag).
//   - Service: owns the engine and the GORM-backed store.
//   - Handler: exposes the HTTP endpoints.
//   - Feature: registers the module with the application loader.
//
// # HTTP Endpoints
//
//   - GET  /tasks      : list the owner's active tasks.
//   - POST /tasks/sync : reconcile a batch of offline-queued mutations.
package tasks
