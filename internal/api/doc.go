// Package api handles incoming HTTP requests for the garden API: request
// decoding and validation, calls into the garden service, and JSON response
// formatting. Errors are mapped to status codes in one place (errors.go) so
// that store and service details never reach clients.
package api
