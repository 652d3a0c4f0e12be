package normalizer

import "strings"

// ContactKind tags the value held by a Contact.
type ContactKind int

// Contact kinds.
const (
	ContactNone ContactKind = iota
	ContactURL
	ContactPhone
)

// String returns the output field name for the kind.
func (k ContactKind) String() string {
	switch k {
	case ContactURL:
		return "url"
	case ContactPhone:
		return "phone"
	default:
		return "none"
	}
}

// Contact is a classified contact cell.
type Contact struct {
	Kind  ContactKind
	Value string
}

// ClassifyContact decides whether raw is a link or a phone number. Anything
// that does not look like a link is kept as a phone number, malformed or not.
func ClassifyContact(raw string) Contact {
	switch {
	case raw == "":
		return Contact{Kind: ContactNone}
	case strings.HasPrefix(raw, "http"):
		return Contact{Kind: ContactURL, Value: raw}
	case strings.HasPrefix(raw, "www"):
		return Contact{Kind: ContactURL, Value: "http://" + raw}
	default:
		return Contact{Kind: ContactPhone, Value: raw}
	}
}
