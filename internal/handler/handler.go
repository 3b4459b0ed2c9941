// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It binds path parameters and JSON bodies, validates them using
// the validation package, and calls the appropriate service.
// Successful results are shaped into the response types in
// responses.go; errors are returned to the global error handler.
package handler
