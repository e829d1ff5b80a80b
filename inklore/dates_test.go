package inklore

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "full width",
			input: `"2024-01-02T03:04:05Z"`,
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "single digit components",
			input: `"2024-1-2T3:4:5Z"`,
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:    "loose format rejected",
			input:   `"2024-01-02 03:04:05"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !ts.Equal(tt.want) {
				t.Errorf("time = %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

func TestLooseTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "full width",
			input: `"2024-01-02 03:04:05"`,
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "single digit components",
			input: `"2024-1-2 3:4:5"`,
			want:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts LooseTimestamp
			if err := json.Unmarshal([]byte(tt.input), &ts); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !ts.Equal(tt.want) {
				t.Errorf("time = %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	ts := Timestamp{time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)}
	got, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `"2024-03-04T05:06:07Z"` {
		t.Errorf("marshal = %s, want %q", got, `"2024-03-04T05:06:07Z"`)
	}
}
