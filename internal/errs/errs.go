// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (field errors for request validation, HTTPError for API responses,
// StorageError for database failures) so clients receive meaningful
// and consistent error messages.
package errs
