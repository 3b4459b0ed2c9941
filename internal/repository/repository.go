// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every operation acquires one pooled connection for its whole duration
// and releases it before returning. Writes run their single statement in
// a transaction committed before the connection is released. Every error
// leaving this package is an *errs.StorageError.
package repository
