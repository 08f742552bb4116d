package models

// Common constants used across the application
const (
	// DownloadFileName is the attachment name offered for the raw dataset.
	DownloadFileName = "business_owners.csv"

	// CSVContentType is sent with the raw dataset download.
	CSVContentType = "text/csv; charset=utf-8"
)
