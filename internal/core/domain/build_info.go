package domain

import "time"

// CachedTransform is a transpiler result persisted across build passes.
type CachedTransform struct {
	Key       string    `json:"key,omitzero"`
	Code      string    `json:"code,omitzero"`
	SourceMap []byte    `json:"source_map,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
