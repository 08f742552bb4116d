package models

import "time"

// ResponseModel is the envelope used for error and status bodies.
// Successful data endpoints encode their payload directly so the dashboard
// scripts can consume it without unwrapping.
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseVersion is the envelope version reported by every response.
const ResponseVersion = 2

func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     ResponseVersion,
	}
}

// NewErrorResponse builds an envelope without a data section.
func NewErrorResponse(code int, text string) ResponseModel {
	return NewResponse(code, nil, text)
}

// ResponseCurrentTime returns the current time in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
