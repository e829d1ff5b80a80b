package inklore

import (
	"strings"
	"time"
)

// The API emits two date shapes depending on endpoint: most resources use an
// ISO-like format with a literal Z suffix, search results use a space-separated
// form without timezone. Both tolerate single-digit components.
const (
	timestampLayout      = "2006-1-2T15:4:5Z"
	looseTimestampLayout = "2006-1-2 15:4:5"
)

// Timestamp is a date in the Z-suffixed wire format.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	return unmarshalWireTime(&t.Time, data, timestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format("2006-01-02T15:04:05Z") + `"`), nil
}

// LooseTimestamp is a date in the timezone-less wire format used by the search
// endpoints.
type LooseTimestamp struct {
	time.Time
}

func (t *LooseTimestamp) UnmarshalJSON(data []byte) error {
	return unmarshalWireTime(&t.Time, data, looseTimestampLayout)
}

func (t LooseTimestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format("2006-01-02 15:04:05") + `"`), nil
}

func unmarshalWireTime(dst *time.Time, data []byte, layout string) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}
