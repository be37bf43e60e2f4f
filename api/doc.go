// Package api holds the JSON request and response bodies of the HTTP API.
// Request bodies carry the validation tags checked by internal/validator.
package api
