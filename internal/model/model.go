// Package model defines the persisted entities and the typed request
// payloads accepted by the HTTP layer.
package model

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"
