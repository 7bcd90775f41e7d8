package kv

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind tags an Entry.
type Kind int

const (
	// KindIgnored entries take a slot on their page but draw nothing.
	KindIgnored Kind = iota
	KindPair
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindPair:
		return "pair"
	case KindSeparator:
		return "separator"
	default:
		return "ignored"
	}
}

// Action runs synchronously when a row is tapped.
type Action func()

// Entry is one logical row source.
type Entry struct {
	Kind   Kind
	Key    string
	Value  string
	Action Action
}

// Pair returns a key/value entry. Text is normalized to NFC so truncation
// never separates a base rune from its combining marks.
func Pair(key, value string) Entry {
	return Entry{Kind: KindPair, Key: norm.NFC.String(key), Value: norm.NFC.String(value)}
}

// PairWithAction returns a key/value entry that runs action when tapped.
func PairWithAction(key, value string, action Action) Entry {
	e := Pair(key, value)
	e.Action = action
	return e
}

// Separator returns a divider entry.
func Separator() Entry {
	return Entry{Kind: KindSeparator}
}

// Ignored returns an entry that draws nothing.
func Ignored() Entry {
	return Entry{Kind: KindIgnored}
}

// FromString classifies a bare string: a leading dash makes a separator,
// anything else is ignored.
func FromString(s string) Entry {
	if strings.HasPrefix(s, "-") {
		return Separator()
	}
	return Ignored()
}

// Ingest converts loosely typed items into entries, once. Recognized shapes
// are Entry, string, [2]string, two-element []string, and two-element []any
// holding strings, booleans or numbers, so []any{"Count", 7} is a pair as
// `[Count, 7]` is in a document. Everything else is ignored rather than
// rejected.
func Ingest(items []any) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, ingestOne(item))
	}
	return entries
}

func ingestOne(item any) Entry {
	switch v := item.(type) {
	case Entry:
		return v
	case string:
		return FromString(v)
	case [2]string:
		return Pair(v[0], v[1])
	case []string:
		if len(v) == 2 {
			return Pair(v[0], v[1])
		}
	case []any:
		if len(v) == 2 {
			key, ok1 := scalarText(v[0])
			value, ok2 := scalarText(v[1])
			if ok1 && ok2 {
				return Pair(key, value)
			}
		}
	}
	return Ignored()
}

// scalarText renders strings, booleans and numbers as text.
func scalarText(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), true
	}
	return "", false
}
