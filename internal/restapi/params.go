package restapi

import (
	"errors"
	"net/http"

	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/query"
)

// intParam reads a numeric query parameter. Absent values silently become def;
// malformed or out-of-range values become def and are logged.
func intParam(r *http.Request, name string, parse func(string) (int, error), def int) int {
	raw := r.URL.Query().Get(name)
	n, err := parse(raw)
	if err != nil && !errors.Is(err, query.ErrParameterAbsent) {
		logging.LogInvalidParameter(logging.FromContext(r.Context()), name, raw, def)
	}
	return query.WithDefault(n, err, def)
}
