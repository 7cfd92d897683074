package api

import "encoding/json"

// Result is the normalized outcome of one API call. OK is always the
// transport's own determination (HTTP status in the success range); a
// same-named field inside the payload never overrides it. Payload holds
// the parsed response body, degraded to an empty object when the body is
// not valid JSON, so callers can decode unconditionally.
type Result struct {
	OK      bool
	Status  int
	Err     string
	Payload json.RawMessage
}

// Decode unmarshals the payload into out. An empty-object payload leaves
// out untouched, which is the degraded-response contract.
func (r Result) Decode(out any) error {
	if len(r.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(r.Payload, out)
}

// ErrorMessage returns the server-supplied error if present, else fallback.
func (r Result) ErrorMessage(fallback string) string {
	if r.Err != "" {
		return r.Err
	}
	return fallback
}

func emptyObject() json.RawMessage {
	return json.RawMessage("{}")
}
