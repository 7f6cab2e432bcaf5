package server

import "encoding/json"

// PutEntryRequest is the request body for storing a value. The value is kept
// as raw JSON; the cache does not interpret it.
type PutEntryRequest struct {
	Value json.RawMessage `json:"value"`
}

// GetEntryResponse is the response body for a cache hit.
type GetEntryResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// StatsResponse reports the resident entry count and the configured bound.
type StatsResponse struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}
