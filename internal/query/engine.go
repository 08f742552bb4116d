package query

import (
	"strings"

	"ownerboard.dev/internal/dataset"
)

// Default ranking sizes for the two grouping shapes served by the dashboard.
const (
	DefaultStatesLimit = 10
	DefaultCitiesLimit = 20
)

// Engine answers read-only queries over a canonical table. It holds no mutable
// state, so one Engine can serve any number of concurrent callers.
type Engine struct {
	table *dataset.Table
	// lowered[i][c] is the lower-cased value of column c in row i, or "" when missing.
	lowered [][]string
}

// NewEngine indexes table for search. The table must not be modified afterwards.
func NewEngine(table *dataset.Table) *Engine {
	lowered := make([][]string, table.Len())
	for i := range lowered {
		rec := table.Row(i)
		row := make([]string, len(dataset.Columns))
		for j, c := range dataset.Columns {
			if v := rec.Get(c); v.Valid {
				row[j] = strings.ToLower(v.String)
			}
		}
		lowered[i] = row
	}
	return &Engine{table: table, lowered: lowered}
}

// Table returns the table the engine reads from.
func (e *Engine) Table() *dataset.Table {
	return e.table
}

// Summary holds the dashboard's headline counts.
type Summary struct {
	TotalRecords        int `json:"total_records"`
	UniqueStates        int `json:"unique_states"`
	UniqueCities        int `json:"unique_cities"`
	UniqueOwners        int `json:"unique_owners"`
	PhonesPresent       int `json:"phones_present"`
	PhonesMissing       int `json:"phones_missing"`
	PotentialDuplicates int `json:"potential_duplicates"`
}

// duplicateKey compares missing values as equal to each other.
type duplicateKey struct {
	business, city, state dataset.Value
}

// Summary counts rows, distinct states, cities and owners, phone coverage, and the
// rows that share their (business name, city, state) with at least one other row.
func (e *Engine) Summary() Summary {
	states := map[string]struct{}{}
	cities := map[string]struct{}{}
	owners := map[string]struct{}{}
	dupes := map[duplicateKey]int{}

	s := Summary{TotalRecords: e.table.Len()}
	for i := 0; i < e.table.Len(); i++ {
		rec := e.table.Row(i)
		addDistinct(states, rec.State)
		addDistinct(cities, rec.City)
		addDistinct(owners, rec.OwnerName)

		if rec.MobileNumber.Valid {
			s.PhonesPresent++
		} else {
			s.PhonesMissing++
		}

		dupes[duplicateKey{rec.BusinessName, rec.City, rec.State}]++
	}

	s.UniqueStates = len(states)
	s.UniqueCities = len(cities)
	s.UniqueOwners = len(owners)
	for _, n := range dupes {
		if n > 1 {
			s.PotentialDuplicates += n
		}
	}
	return s
}

func addDistinct(set map[string]struct{}, v dataset.Value) {
	if v.Valid {
		set[v.String] = struct{}{}
	}
}
