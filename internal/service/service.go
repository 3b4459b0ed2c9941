// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, turns missing
// rows into not-found errors and foreign key failures into
// conflicts, and schedules welcome emails for new members.
package service
