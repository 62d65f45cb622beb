// Package api provides the versioned HTTP handlers for the catalog:
// national parks, trails, and user authentication. Handlers translate
// requests into store operations, apply transport-facing validation, and
// map results to response payloads and status codes.
package api
