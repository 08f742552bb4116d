package restapi

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

type CompressionConfig struct {
	// MinSize is the smallest body, in bytes, that gets compressed.
	MinSize int
	// Level is the gzip level, 1-9.
	Level int
	// ContentTypes lists the media types worth compressing. Empty means all.
	ContentTypes []string
}

// DefaultCompressionConfig covers every text payload the dashboard serves.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
		ContentTypes: []string{
			"application/json",
			"text/csv",
			"text/html",
		},
	}
}

// NewCompressionMiddleware builds the gzip wrapper once for config. Out-of-range
// sizes or levels are reported as an error.
func NewCompressionMiddleware(config CompressionConfig) (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
		gzhttp.ContentTypes(config.ContentTypes),
	)
	if err != nil {
		return nil, fmt.Errorf("configure compression: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}

var defaultCompression = mustCompression(DefaultCompressionConfig())

func mustCompression(config CompressionConfig) func(http.Handler) http.Handler {
	m, err := NewCompressionMiddleware(config)
	if err != nil {
		panic(err)
	}
	return m
}

// CompressionMiddleware gzips JSON, HTML and CSV responses of at least 1 KiB
// for clients that accept it.
func CompressionMiddleware(next http.Handler) http.Handler {
	return defaultCompression(next)
}
