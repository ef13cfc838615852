// Package api implements the platform-neutral core of the task service: the
// request dispatcher, the handlers behind each route, input validation, and
// the response envelope every outcome is serialized through.
//
// The package consumes HTTP-shaped events (method, path, body) rather than
// net/http requests so the same dispatcher can sit behind both the standalone
// HTTP server and the Lambda adapter.
package api
