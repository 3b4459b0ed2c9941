// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into a structured Error, then wraps the result in an
// errs.StorageError so callers can tell store failures apart from
// validation and not-found outcomes.
package sqlerr
