package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ownerboard.dev/internal/dataset"
)

// Group is a set of rows sharing the same values for the grouping columns.
type Group struct {
	Keys  []dataset.Value
	Count int
}

// Labels renders the group's key values, with missing values as "Unknown".
func (g Group) Labels() []string {
	out := make([]string, len(g.Keys))
	for i, v := range g.Keys {
		out[i] = v.Label()
	}
	return out
}

// StateCount is one entry of the per-state ranking.
type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// CityCount is one entry of the per-(state, city) ranking.
type CityCount struct {
	State string `json:"state"`
	City  string `json:"city"`
	Count int    `json:"count"`
}

// TopGroups groups rows by the literal values of keys, missing included, and returns
// at most limit groups ordered by count descending, then by key ascending.
func (e *Engine) TopGroups(keys []dataset.Column, limit int) ([]Group, error) {
	if len(keys) == 0 {
		return nil, &InvalidQueryParameterError{Name: "keys", Reason: "at least one key column is required"}
	}
	for _, k := range keys {
		if k < dataset.BusinessName || k > dataset.MobileNumber {
			return nil, &InvalidQueryParameterError{Name: "keys", Value: fmt.Sprint(int(k)), Reason: "unknown column"}
		}
	}
	if limit <= 0 {
		return []Group{}, nil
	}

	index := map[string]int{}
	var groups []Group
	for i := 0; i < e.table.Len(); i++ {
		rec := e.table.Row(i)
		vals := make([]dataset.Value, len(keys))
		for j, k := range keys {
			vals[j] = rec.Get(k)
		}

		id := groupID(vals)
		if pos, ok := index[id]; ok {
			groups[pos].Count++
			continue
		}
		index[id] = len(groups)
		groups = append(groups, Group{Keys: vals, Count: 1})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return compareKeys(groups[i].Keys, groups[j].Keys) < 0
	})

	if len(groups) > limit {
		groups = groups[:limit]
	}
	if groups == nil {
		groups = []Group{}
	}
	return groups, nil
}

// TopStates ranks states by record count.
func (e *Engine) TopStates(limit int) []StateCount {
	groups, err := e.TopGroups([]dataset.Column{dataset.State}, limit)
	out := make([]StateCount, 0, len(groups))
	if err != nil {
		return out
	}
	for _, g := range groups {
		out = append(out, StateCount{State: g.Keys[0].Label(), Count: g.Count})
	}
	return out
}

// TopCities ranks (state, city) pairs by record count.
func (e *Engine) TopCities(limit int) []CityCount {
	groups, err := e.TopGroups([]dataset.Column{dataset.State, dataset.City}, limit)
	out := make([]CityCount, 0, len(groups))
	if err != nil {
		return out
	}
	for _, g := range groups {
		out = append(out, CityCount{State: g.Keys[0].Label(), City: g.Keys[1].Label(), Count: g.Count})
	}
	return out
}

// groupID length-prefixes each present value so distinct tuples never share an id.
func groupID(vals []dataset.Value) string {
	var b strings.Builder
	for _, v := range vals {
		if !v.Valid {
			b.WriteString("-;")
			continue
		}
		b.WriteString(strconv.Itoa(len(v.String)))
		b.WriteByte(':')
		b.WriteString(v.String)
	}
	return b.String()
}

func compareKeys(a, b []dataset.Value) int {
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return 0
}
