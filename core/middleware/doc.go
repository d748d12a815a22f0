// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: Validates the client's bearer session token (HS256 JWT) and
//     resolves the owner identity into request locals. Every sync batch is
//     applied on behalf of that owner; handlers never trust an owner id from
//     the request body.
//   - RayID: Generates a unique Request ID (RayID) for every incoming
//     request, injecting it into the context and response headers for
//     tracing.
//
// These middleware components are registered globally in the start command.
package middleware
