package activity

import (
	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// TimestampLayout is the display form of Entry.Timestamp.
const TimestampLayout = "2006-01-02 03:04 PM"

// Entry is one line of the activity log.
type Entry struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

func (e Entry) GetID() string { return e.ID }

func (e Entry) ToRecord() browse.Record {
	return browse.Record{
		"id":        e.ID,
		"action":    e.Action,
		"user":      e.User,
		"timestamp": e.Timestamp,
		"details":   e.Details,
	}
}

// Mutation describes a change made to some other collection.
type Mutation struct {
	Entity   string
	Action   string
	RecordID string
	// Title is the short headline shown in the log, Details the sentence
	// beneath it.
	Title   string
	Details string
}
