/*
Package journal defines core domain entities related to the dispatch journal.
*/
package journal

import "time"

/*
Entry is one sub-command that was handed to the client command executor.
*/
type Entry struct {
	Time       time.Time
	DispatchID string
	Actor      string
	Text       string
}

/*
VerbFrequency represents a command verb and how many times it was dispatched.
*/
type VerbFrequency struct {
	Verb  string
	Count int
}
