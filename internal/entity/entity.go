// Package entity defines the formatting annotations attached to a message text.
package entity

// Kind identifies the formatting an entity applies.
type Kind int

const (
	KindUnknown Kind = iota
	KindBold
	KindItalic
	KindUnderline
	KindStrikethrough
	KindSpoiler
	KindCode
	KindPre
	KindTextLink
	KindTextMention
	KindURL
	KindEmail
	KindMention
	KindBlockquote
)

// DefaultPriority is used for kinds without an entry in the priority table.
const DefaultPriority = 15

var kindNames = map[Kind]string{
	KindBold:          "bold",
	KindItalic:        "italic",
	KindUnderline:     "underline",
	KindStrikethrough: "strikethrough",
	KindSpoiler:       "spoiler",
	KindCode:          "code",
	KindPre:           "pre",
	KindTextLink:      "text_link",
	KindTextMention:   "text_mention",
	KindURL:           "url",
	KindEmail:         "email",
	KindMention:       "mention",
	KindBlockquote:    "blockquote",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// Lower priorities are rendered further out.
var priorities = map[Kind]int{
	KindBlockquote:    -10,
	KindTextLink:      0,
	KindTextMention:   0,
	KindURL:           0,
	KindEmail:         0,
	KindMention:       0,
	KindBold:          10,
	KindItalic:        11,
	KindUnderline:     12,
	KindStrikethrough: 13,
	KindSpoiler:       14,
	KindCode:          20,
	KindPre:           21,
}

var mergeable = map[Kind]bool{
	KindBold:          true,
	KindItalic:        true,
	KindUnderline:     true,
	KindStrikethrough: true,
}

// ParseKind returns the kind for a Bot API entity type name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := KindBold; k <= KindBlockquote; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Priority returns the nesting priority of k.
func (k Kind) Priority() int {
	if p, ok := priorities[k]; ok {
		return p
	}
	return DefaultPriority
}

// Mergeable reports whether whitespace-separated runs of k are coalesced.
func (k Kind) Mergeable() bool {
	return mergeable[k]
}

// IsLink reports whether k renders as an anchor.
func (k Kind) IsLink() bool {
	switch k {
	case KindTextLink, KindTextMention, KindURL, KindEmail, KindMention:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognised names
// decode to KindUnknown.
func (k *Kind) UnmarshalText(b []byte) error {
	*k, _ = ParseKind(string(b))
	return nil
}

// User is the subject of a text_mention entity.
type User struct {
	ID        int64  `json:"id" yaml:"id"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
}

// Entity is one formatting annotation. Offset and Length count UTF-16 code
// units of the message text.
type Entity struct {
	Type     Kind   `json:"type" yaml:"type"`
	Offset   int    `json:"offset" yaml:"offset"`
	Length   int    `json:"length" yaml:"length"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	User     *User  `json:"user,omitempty" yaml:"user,omitempty"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// End returns the exclusive UTF-16 end of the entity.
func (e Entity) End() int {
	return e.Offset + e.Length
}

// Message is a text with its entities, as delivered by the Bot API. Media
// messages carry the same pair as caption fields.
type Message struct {
	Text            string   `json:"text,omitempty" yaml:"text,omitempty"`
	Entities        []Entity `json:"entities,omitempty" yaml:"entities,omitempty"`
	Caption         string   `json:"caption,omitempty" yaml:"caption,omitempty"`
	CaptionEntities []Entity `json:"caption_entities,omitempty" yaml:"caption_entities,omitempty"`
}

// Content returns the text and entities to convert, preferring the text
// over the caption.
func (m Message) Content() (string, []Entity) {
	if m.Text != "" {
		return m.Text, m.Entities
	}
	return m.Caption, m.CaptionEntities
}
