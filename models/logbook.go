package models

import "time"

// Frequency enumerates how often a logbook check is due.
type Frequency string

const (
	FreqDaily       Frequency = "Daily"
	FreqWeekly      Frequency = "Weekly"
	FreqMonthly     Frequency = "Monthly"
	FreqQuarterly   Frequency = "Quarterly"
	FreqSixMonthly  Frequency = "Every 6 months"
	FreqAnnually    Frequency = "Annually"
	FreqTwoYearly   Frequency = "Every 2 years"
	FreqThreeYearly Frequency = "Every 3 years"
	FreqFiveYearly  Frequency = "Every 5 years"
)

// Frequencies lists every valid frequency, in ascending interval order.
var Frequencies = []Frequency{
	FreqDaily, FreqWeekly, FreqMonthly, FreqQuarterly,
	FreqSixMonthly, FreqAnnually, FreqTwoYearly, FreqThreeYearly, FreqFiveYearly,
}

// Valid reports whether f is one of the enumerated frequencies.
func (f Frequency) Valid() bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Logbook is a recurring compliance obligation attached to a property.
type Logbook struct {
	ID          string    `bson:"id" json:"id"`
	PropertyID  string    `bson:"property_id" json:"property_id"`
	Name        string    `bson:"name" json:"name"`
	Frequency   Frequency `bson:"frequency" json:"frequency"`
	Active      bool      `bson:"active" json:"active"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// EntryStatus is the outcome of a single performed check.
type EntryStatus string

const (
	EntryWorking EntryStatus = "Working Correctly"
	EntryIssue   EntryStatus = "Issue Identified"
)

// LogbookEntry records one performed check. Entries are append-only.
type LogbookEntry struct {
	ID           string      `bson:"id" json:"id"`
	LogbookID    string      `bson:"logbook_id" json:"logbook_id"`
	Status       EntryStatus `bson:"status" json:"status"`
	IssueComment string      `bson:"issue_comment,omitempty" json:"issue_comment,omitempty"` // required iff Status == EntryIssue
	PerformedBy  string      `bson:"performed_by" json:"performed_by"`
	PerformedAt  time.Time   `bson:"performed_at" json:"performed_at"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
}
