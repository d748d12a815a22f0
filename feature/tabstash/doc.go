// Package tabstash implements the tab stash feature: the extension saves a
// window's tabs under a name, closes them, and restores them later on any
// device. Stashes sync through the reconcile engine; the tab list itself is
// an opaque JSON document to the server, clamped by dropping trailing tabs.
package tabstash
