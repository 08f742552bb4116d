package models

// HealthModel is the body of the liveness endpoint.
type HealthModel struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func NewHealthModel(records int) HealthModel {
	return HealthModel{Status: "ok", Records: records}
}
