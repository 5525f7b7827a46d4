package entities

// SupervisionRecord is one row of the supervisory reference (sheet 1)
// after cleaning: the numeric cost-center key is unique by construction
// (first occurrence wins on duplicates).
type SupervisionRecord struct {
	Key           int64
	Branch        string
	BankType      string
	SegmentedBank string
	Zone          string
	Supervisor    string
}
