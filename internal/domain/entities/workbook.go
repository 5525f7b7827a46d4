package entities

// RawSheet is an untyped worksheet as read from the workbook: a header
// row plus data rows, all cells as strings.
type RawSheet struct {
	Headers []string
	Rows    [][]string
}

// Workbook is the two fixed-position sheets of the daily BP export:
// work orders first, supervisory reference second.
type Workbook struct {
	Orders      RawSheet
	Supervision RawSheet
}
