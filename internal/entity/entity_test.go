package entity

import (
	"encoding/json"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBold, "bold"},
		{KindTextLink, "text_link"},
		{KindTextMention, "text_mention"},
		{KindBlockquote, "blockquote"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindPriority(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindBlockquote, -10},
		{KindTextLink, 0},
		{KindMention, 0},
		{KindBold, 10},
		{KindItalic, 11},
		{KindUnderline, 12},
		{KindStrikethrough, 13},
		{KindSpoiler, 14},
		{KindUnknown, 15},
		{KindCode, 20},
		{KindPre, 21},
	}
	for _, tt := range tests {
		if got := tt.kind.Priority(); got != tt.want {
			t.Errorf("%s.Priority() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKindMergeable(t *testing.T) {
	for _, k := range Kinds() {
		want := k == KindBold || k == KindItalic || k == KindUnderline || k == KindStrikethrough
		if got := k.Mergeable(); got != want {
			t.Errorf("%s.Mergeable() = %v, want %v", k, got, want)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("hashtag"); ok {
		t.Error("hashtag should not be a known kind")
	}
}

func TestEntityJSON(t *testing.T) {
	raw := `[
		{"type": "bold", "offset": 0, "length": 5},
		{"type": "text_link", "offset": 6, "length": 5, "url": "https://example.com"},
		{"type": "text_mention", "offset": 0, "length": 3, "user": {"id": 42, "first_name": "Ann"}},
		{"type": "pre", "offset": 1, "length": 2, "language": "go"},
		{"type": "hashtag", "offset": 0, "length": 4}
	]`

	var ents []Entity
	if err := json.Unmarshal([]byte(raw), &ents); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ents) != 5 {
		t.Fatalf("expected 5 entities, got %d", len(ents))
	}
	if ents[0].Type != KindBold || ents[0].End() != 5 {
		t.Errorf("unexpected first entity: %+v", ents[0])
	}
	if ents[1].URL != "https://example.com" {
		t.Errorf("url = %q", ents[1].URL)
	}
	if ents[2].User == nil || ents[2].User.ID != 42 {
		t.Errorf("user = %+v", ents[2].User)
	}
	if ents[3].Language != "go" {
		t.Errorf("language = %q", ents[3].Language)
	}
	if ents[4].Type != KindUnknown {
		t.Errorf("hashtag decoded as %s", ents[4].Type)
	}
}

func TestMessageContent(t *testing.T) {
	m := Message{Caption: "cap", CaptionEntities: []Entity{{Type: KindBold, Length: 3}}}
	text, ents := m.Content()
	if text != "cap" || len(ents) != 1 {
		t.Errorf("caption fallback: %q %v", text, ents)
	}

	m.Text = "body"
	text, ents = m.Content()
	if text != "body" || ents != nil {
		t.Errorf("text preferred: %q %v", text, ents)
	}
}
