// Package notes implements the synced notes feature: offline batch
// reconciliation for free-form text notes, GET /notes and POST /notes/sync.
package notes
