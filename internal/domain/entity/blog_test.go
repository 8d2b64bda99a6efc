package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBlog_IsPersisted(t *testing.T) {
	t.Parallel()

	draft := Blog{}
	if draft.IsPersisted() {
		t.Error("blog without id must not be persisted")
	}

	persisted := Blog{ID: "66b1f0c2"}
	if !persisted.IsPersisted() {
		t.Error("blog with id must be persisted")
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	got := Today()
	parsed, err := time.Parse(DateLayout, got)
	if err != nil {
		t.Fatalf("Today() = %q is not in the wire date layout: %v", got, err)
	}
	if parsed.Format(DateLayout) != got {
		t.Errorf("Today() = %q does not round-trip through the layout", got)
	}
}

func TestBlog_WireDecoding(t *testing.T) {
	t.Parallel()

	raw := `{
		"_id": "66b1f0c2",
		"authorName": "Dana Cole",
		"title": "Hiking the Alps",
		"category": "Travel",
		"subCategory": "Hiking",
		"summary": "A week across three passes.",
		"content": "We started the traverse at dawn.",
		"travelTags": ["alps", "hiking"],
		"publishingDate": "2026-08-30",
		"authorImage": "https://cdn.example.com/dana.png",
		"media": ["https://cdn.example.com/pass.jpg"]
	}`

	var blog Blog
	if err := json.Unmarshal([]byte(raw), &blog); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if blog.ID != "66b1f0c2" {
		t.Errorf("ID = %q, want 66b1f0c2", blog.ID)
	}
	if blog.PublishingDate != "2026-08-30" {
		t.Errorf("PublishingDate = %q, want the raw date string", blog.PublishingDate)
	}
	if diff := cmp.Diff([]string{"alps", "hiking"}, blog.TravelTags); diff != "" {
		t.Errorf("TravelTags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain list",
			raw:  "paris,france",
			want: []string{"paris", "france"},
		},
		{
			name: "whitespace and empties dropped",
			raw:  "paris, france,, food",
			want: []string{"paris", "france", "food"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only separators",
			raw:  " , ,",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, ParseTags(tt.raw)); diff != "" {
				t.Errorf("ParseTags(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestJoinTags_RoundTrip(t *testing.T) {
	t.Parallel()

	tags := []string{"paris", "france", "food"}
	if diff := cmp.Diff(tags, ParseTags(JoinTags(tags))); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAttachment(t *testing.T) {
	t.Parallel()

	var none Attachment
	if !none.IsZero() || none.IsLocal() {
		t.Error("zero attachment must be neither local nor remote")
	}

	local := LocalFile("photo.jpg", []byte{0xff, 0xd8})
	if !local.IsLocal() || local.IsZero() {
		t.Error("LocalFile must be local")
	}
	if local.Filename() != "photo.jpg" || len(local.Content()) != 2 {
		t.Errorf("local attachment lost its file: %q %d bytes", local.Filename(), len(local.Content()))
	}
	if local.URL() != "" {
		t.Errorf("local attachment URL = %q, want empty", local.URL())
	}

	remote := RemoteURL("https://cdn.example.com/photo.jpg")
	if remote.IsLocal() || remote.IsZero() {
		t.Error("RemoteURL must be remote")
	}
	if remote.URL() != "https://cdn.example.com/photo.jpg" {
		t.Errorf("remote attachment URL = %q", remote.URL())
	}
	if remote.Filename() != "" || remote.Content() != nil {
		t.Error("remote attachment must carry no local file")
	}
}
