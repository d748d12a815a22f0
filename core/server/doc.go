// Package server holds configuration for the HTTP surface: listen port,
// session token secret, and request body limits. The Fiber app itself is
// assembled in the start command.
package server
