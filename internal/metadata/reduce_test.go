package metadata

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestReduce(t *testing.T) {
	stdout := `[download] Destination: My Video [abc123].mkv
{"id":"early","title":"stale line"}
[Merger] Merging formats
{"id":"abc123","title":"My Video","uploader":"Some Creator","upload_date":"20230615","duration":3725,"width":1920,"height":1080,"view_count":123456,"webpage_url":"https://example.com/watch?v=abc123"}
`
	meta, id, err := Reduce(stdout)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if id != "abc123" {
		t.Errorf("id = %q, want %q", id, "abc123")
	}
	if meta.Title != "My Video" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Creator != "Some Creator" {
		t.Errorf("Creator = %q", meta.Creator)
	}
	if meta.UploadDate != "June 15, 2023" {
		t.Errorf("UploadDate = %q", meta.UploadDate)
	}
	if meta.Duration != "01:02:05" {
		t.Errorf("Duration = %q", meta.Duration)
	}
	if meta.Resolution != "1920x1080" {
		t.Errorf("Resolution = %q", meta.Resolution)
	}
	if n, ok := meta.ViewCount.(json.Number); !ok || n.String() != "123456" {
		t.Errorf("ViewCount = %#v, want json.Number 123456", meta.ViewCount)
	}
	if meta.URL != "https://example.com/watch?v=abc123" {
		t.Errorf("URL = %q", meta.URL)
	}
}

func TestReduceMissingFields(t *testing.T) {
	meta, id, err := Reduce(`{"id":"xyz"}`)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if id != "xyz" {
		t.Errorf("id = %q", id)
	}
	if meta.Title != "Unknown" || meta.Creator != "Unknown" || meta.URL != "Unknown" {
		t.Errorf("defaults not applied: %+v", meta)
	}
	if meta.UploadDate != "Unknown" || meta.Duration != "Unknown" {
		t.Errorf("date/duration defaults not applied: %+v", meta)
	}
	if meta.Resolution != "?x?" {
		t.Errorf("Resolution = %q, want ?x?", meta.Resolution)
	}
	if meta.ViewCount != "Unknown" {
		t.Errorf("ViewCount = %#v, want Unknown", meta.ViewCount)
	}
}

func TestReduceMissingID(t *testing.T) {
	_, id, err := Reduce(`{"title":"No ID Here"}`)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if id != "unknown" {
		t.Errorf("id = %q, want %q", id, "unknown")
	}
}

func TestReduceNoJSON(t *testing.T) {
	_, _, err := Reduce("[download] 100% of 10MiB\nall done\n")
	if !errors.Is(err, ErrNoMetadata) {
		t.Errorf("err = %v, want ErrNoMetadata", err)
	}
}

func TestReduceMalformedJSON(t *testing.T) {
	_, _, err := Reduce(`{"title": "broken`)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("err = %v, want ParseError", err)
	}
}

func TestReduceViewCountPassthrough(t *testing.T) {
	// view_count is carried through unchanged whatever its JSON type.
	tests := []struct {
		name  string
		line  string
		check func(v any) bool
	}{
		{"string", `{"id":"a","view_count":"1.2M"}`, func(v any) bool {
			s, ok := v.(string)
			return ok && s == "1.2M"
		}},
		{"number", `{"id":"a","view_count":42}`, func(v any) bool {
			n, ok := v.(json.Number)
			return ok && n.String() == "42"
		}},
		{"null becomes Unknown", `{"id":"a","view_count":null}`, func(v any) bool {
			return v == "Unknown"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, _, err := Reduce(tt.line)
			if err != nil {
				t.Fatalf("Reduce: %v", err)
			}
			if !tt.check(meta.ViewCount) {
				t.Errorf("ViewCount = %#v", meta.ViewCount)
			}
		})
	}
}
