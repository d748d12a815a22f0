// Package siteblock implements the site blocker feature. The extension keeps
// a local copy of the user's block rules so blocking works offline; this
// package reconciles the queued rule edits when connectivity resumes.
// Domains are normalized (lowercase, no scheme or path) before storage.
package siteblock
