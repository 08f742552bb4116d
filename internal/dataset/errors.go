package dataset

import (
	"fmt"
	"strings"
)

// MissingFileError is returned when the dataset file does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", e.Path)
}

// SchemaError is returned when expected columns are absent from the header row.
// Missing holds the header labels in canonical column order.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing expected columns: [%s]", strings.Join(e.Missing, " "))
}
