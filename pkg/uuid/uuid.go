/*
Package uuid generates time-ordered unique identifiers.

It wraps the standard UUID library to specifically generate Version 7
values, used here as the crawl-run correlation id threaded through every log
line of a single orchestrator run.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}
	return id.String()
}
