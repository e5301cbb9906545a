package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TagSeparator joins category tags in the persisted file.
const TagSeparator = " - "

// Tags is an ordered list of category tags. On disk it is a single
// TagSeparator-joined string so older data files stay readable.
type Tags []string

// ParseTags splits a joined tag string, dropping blank entries.
func ParseTags(s string) Tags {
	if strings.TrimSpace(s) == "" {
		return Tags{}
	}

	parts := strings.Split(s, TagSeparator)
	out := make(Tags, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NewTags builds a tag list from free input, trimming and dropping blanks
// and repeats while keeping first-seen order.
func NewTags(values ...string) Tags {
	out := make(Tags, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func (t Tags) String() string {
	return strings.Join(t, TagSeparator)
}

// Has reports whether tag is one of the entries.
func (t Tags) Has(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

// Mentions reports whether the joined form contains s anywhere. Category
// totals on the donation side are computed this way.
func (t Tags) Mentions(s string) bool {
	return s != "" && strings.Contains(t.String(), s)
}

func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tags) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Tags{}
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*t = ParseTags(joined)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to decode tags: %w", err)
	}
	*t = NewTags(list...)
	return nil
}

// DeriveCaseType combines the ticked category boxes with the free-text
// "other" entry into the case type.
func DeriveCaseType(selected []string, other string) Tags {
	return NewTags(append(append([]string{}, selected...), other)...)
}

// SplitKnownTags re-derives the ticked boxes for an edit form: tags found in
// known come back as selected, the rest are joined into other.
func SplitKnownTags(tags Tags, known []string) (selected []string, other string) {
	var rest []string
	for _, tag := range tags {
		found := false
		for _, k := range known {
			if k == tag {
				found = true
				break
			}
		}
		if found {
			selected = append(selected, tag)
			continue
		}
		rest = append(rest, tag)
	}
	return selected, strings.Join(rest, TagSeparator)
}
