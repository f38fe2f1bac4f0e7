package processor

import (
	"time"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

type Message struct {
	ID         string
	Sender     string
	Content    string
	ReceivedAt time.Time
}

type State string

const (
	StateReceived   = State("received")
	StateClassified = State("classified")
	StatePersisted  = State("persisted")
	StateDiscarded  = State("discarded")
)

// Result records where in the pipeline a message ended up. Discarded is
// terminal: the engine is deterministic, so reprocessing the same text cannot
// change the outcome and no retry policy exists.
type Result struct {
	Message  Message
	State    State
	Category database.Category
	Record   database.Record
	Err      error
}
