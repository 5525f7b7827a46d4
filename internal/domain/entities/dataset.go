package entities

import "time"

// EnrichedOrder is a WorkOrder joined against the supervisory reference
// plus the derived reporting fields. This is the only shape the
// reporting layer reads; it is never mutated after the dataset is built.
type EnrichedOrder struct {
	WorkOrder

	OrderType        OrderType
	StatusLabel      string
	Supervisor       string
	Zone             string
	BankType         string
	SegmentedBank    string
	BranchCategory   string
	Specialty        string
	MonthKey         string
	MonthLabel       string
	DaysToAttention  *int
	DaysToCompletion *int
}

// Dataset is one processed upload, cached in memory for the session.
//
// ID is the SHA-256 hex digest of the uploaded file content, so
// re-presenting identical bytes resolves to the same dataset.
type Dataset struct {
	ID         string
	FileName   string
	UploadedAt time.Time
	Orders     []EnrichedOrder
	Reference  []SupervisionRecord
}

// UnmatchedCount reports how many orders carry no reference match
// (nil join key or a key absent from the reference).
func (d *Dataset) UnmatchedCount() int {
	n := 0
	for i := range d.Orders {
		if d.Orders[i].Supervisor == SentinelUnassigned {
			n++
		}
	}
	return n
}
