package dataset

import "strings"

// missingTokens are the values, compared after trimming, that mean "no value".
// Other placeholders such as NA, N/A or NULL are kept as data.
var missingTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
}

// CleanValue trims v and turns blank and sentinel values into the missing marker.
func CleanValue(v Value) Value {
	if !v.Valid {
		return v
	}
	s := strings.TrimSpace(v.String)
	if _, ok := missingTokens[s]; ok {
		return Missing()
	}
	return Present(s)
}

// CleanRecord applies CleanValue to every column of r.
func CleanRecord(r Record) Record {
	for _, c := range Columns {
		r = r.With(c, CleanValue(r.Get(c)))
	}
	return r
}

// Clean returns the canonical table for raw. Rows keep their order and count.
func Clean(raw *Table) *Table {
	out := make([]Record, raw.Len())
	for i := range out {
		out[i] = CleanRecord(raw.Row(i))
	}
	return &Table{records: out}
}
