package dataset

// Table is an ordered, immutable sequence of records. A record's index is its
// position in the source file.
type Table struct {
	records []Record
}

// NewTable builds a Table from a copy of records.
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Row returns the record at index i. It panics if i is out of range.
func (t *Table) Row(i int) Record {
	return t.records[i]
}

// Rows returns a copy of all records in order.
func (t *Table) Rows() []Record {
	if t == nil {
		return nil
	}
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}
