package dataset

import "strings"

// UnknownLabel is how a missing value is shown in aggregate output.
const UnknownLabel = "Unknown"

// Value is a single cell. A Value with Valid == false is the missing-value marker,
// which is distinct from the empty string.
type Value struct {
	String string
	Valid  bool
}

// Present returns a non-missing Value holding s.
func Present(s string) Value {
	return Value{String: s, Valid: true}
}

// Missing returns the missing-value marker.
func Missing() Value {
	return Value{}
}

// OrEmpty renders the value for record listings: missing becomes "".
func (v Value) OrEmpty() string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// Label renders the value for aggregate output: missing becomes UnknownLabel.
func (v Value) Label() string {
	if !v.Valid {
		return UnknownLabel
	}
	return v.String
}

// Compare orders values lexically, with the missing marker after every present value.
func (v Value) Compare(o Value) int {
	switch {
	case v.Valid && o.Valid:
		return strings.Compare(v.String, o.String)
	case v.Valid:
		return -1
	case o.Valid:
		return 1
	default:
		return 0
	}
}

// Column identifies one of the five fixed record fields.
type Column int

const (
	BusinessName Column = iota
	OwnerName
	City
	State
	MobileNumber
)

// Columns lists every column in canonical order.
var Columns = []Column{BusinessName, OwnerName, City, State, MobileNumber}

var columnNames = [...]string{
	BusinessName: "Business Name",
	OwnerName:    "Owner Name",
	City:         "City",
	State:        "State",
	MobileNumber: "Mobile Number",
}

var columnKeys = [...]string{
	BusinessName: "business_name",
	OwnerName:    "owner_name",
	City:         "city",
	State:        "state",
	MobileNumber: "mobile_number",
}

// String returns the header label used in source files, e.g. "Business Name".
func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return "Column(?)"
	}
	return columnNames[c]
}

// Key returns the snake_case key used in JSON output, e.g. "business_name".
func (c Column) Key() string {
	if c < 0 || int(c) >= len(columnKeys) {
		return ""
	}
	return columnKeys[c]
}

// ColumnByKey resolves a snake_case key or a header label to a Column.
func ColumnByKey(name string) (Column, bool) {
	norm := normalizeHeader(name)
	for _, c := range Columns {
		if normalizeHeader(c.String()) == norm {
			return c, true
		}
	}
	return 0, false
}

// Record is one row of the dataset.
type Record struct {
	BusinessName Value
	OwnerName    Value
	City         Value
	State        Value
	MobileNumber Value
}

// Get returns the value stored in column c.
func (r Record) Get(c Column) Value {
	switch c {
	case BusinessName:
		return r.BusinessName
	case OwnerName:
		return r.OwnerName
	case City:
		return r.City
	case State:
		return r.State
	case MobileNumber:
		return r.MobileNumber
	}
	return Missing()
}

// With returns a copy of r with column c set to v.
func (r Record) With(c Column, v Value) Record {
	switch c {
	case BusinessName:
		r.BusinessName = v
	case OwnerName:
		r.OwnerName = v
	case City:
		r.City = v
	case State:
		r.State = v
	case MobileNumber:
		r.MobileNumber = v
	}
	return r
}

// normalizeHeader folds case and treats '_', '-' and whitespace runs as one space.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
