package query

import (
	"strconv"
	"strings"

	"ownerboard.dev/internal/dataset"
)

// Row is a record as listed in the records table; missing values are "".
type Row struct {
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name"`
	City         string `json:"city"`
	State        string `json:"state"`
	MobileNumber string `json:"mobile_number"`
}

// NewRow renders rec for listing.
func NewRow(rec dataset.Record) Row {
	return Row{
		BusinessName: rec.BusinessName.OrEmpty(),
		OwnerName:    rec.OwnerName.OrEmpty(),
		City:         rec.City.OrEmpty(),
		State:        rec.State.OrEmpty(),
		MobileNumber: rec.MobileNumber.OrEmpty(),
	}
}

// Page is one page of a (possibly filtered) records listing.
type Page struct {
	RecordsTotal    int   `json:"recordsTotal"`
	RecordsFiltered int   `json:"recordsFiltered"`
	Data            []Row `json:"data"`
}

// SearchPage filters rows whose fields contain query case-insensitively and returns
// rows [offset, offset+pageSize) of the matches in file order. An empty query
// matches every row.
func (e *Engine) SearchPage(query string, offset, pageSize int) (Page, error) {
	if offset < 0 {
		return Page{}, &InvalidQueryParameterError{Name: "offset", Value: strconv.Itoa(offset), Reason: "must not be negative"}
	}
	if pageSize <= 0 {
		return Page{}, &InvalidQueryParameterError{Name: "page_size", Value: strconv.Itoa(pageSize), Reason: "must be positive"}
	}

	page := Page{
		RecordsTotal: e.table.Len(),
		Data:         []Row{},
	}
	needle := strings.ToLower(query)

	for i := 0; i < e.table.Len(); i++ {
		if needle != "" && !e.rowContains(i, needle) {
			continue
		}
		if page.RecordsFiltered >= offset && len(page.Data) < pageSize {
			page.Data = append(page.Data, NewRow(e.table.Row(i)))
		}
		page.RecordsFiltered++
	}

	return page, nil
}

func (e *Engine) rowContains(i int, needle string) bool {
	rec := e.table.Row(i)
	for j, c := range dataset.Columns {
		if !rec.Get(c).Valid {
			continue
		}
		if strings.Contains(e.lowered[i][j], needle) {
			return true
		}
	}
	return false
}
