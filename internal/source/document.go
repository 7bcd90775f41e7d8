// Package source loads entry documents from files, stdin or R2 and decodes
// them into pager entries.
package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/HaiFongPan/kvpage/internal/kv"
)

// ErrInvalidDocument is returned when the top level is neither a mapping nor
// a sequence.
var ErrInvalidDocument = errors.New("document must be a mapping or a sequence")

// ActionBinder resolves an action name found on a row.
type ActionBinder interface {
	Bind(name, key, value string) kv.Action
}

// Document is a decoded entry document.
type Document struct {
	Title   string
	Entries []kv.Entry
}

// Decode parses a YAML (or JSON) entry document. Malformed entries are kept
// as ignored entries so positions on a page match the document. binder may
// be nil, in which case actions are dropped.
func Decode(data []byte, binder ActionBinder) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{}
	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}

	top := resolve(root.Content[0])
	switch top.Kind {
	case yaml.SequenceNode:
		doc.Entries = decodeEntries(top, binder)
	case yaml.MappingNode:
		for i := 0; i+1 < len(top.Content); i += 2 {
			key, value := top.Content[i].Value, resolve(top.Content[i+1])
			switch key {
			case "title":
				if value.Kind == yaml.ScalarNode {
					doc.Title = value.Value
				}
			case "entries":
				if value.Kind == yaml.SequenceNode {
					doc.Entries = decodeEntries(value, binder)
				}
			default:
				logrus.WithField("field", key).Debug("Unknown document field ignored")
			}
		}
	case yaml.ScalarNode:
		if top.Tag == "!!null" {
			return doc, nil
		}
		return nil, ErrInvalidDocument
	default:
		return nil, ErrInvalidDocument
	}

	return doc, nil
}

func decodeEntries(seq *yaml.Node, binder ActionBinder) []kv.Entry {
	entries := make([]kv.Entry, 0, len(seq.Content))
	ignored := 0
	for _, n := range seq.Content {
		e := decodeEntry(resolve(n), binder)
		if e.Kind == kv.KindIgnored {
			ignored++
		}
		entries = append(entries, e)
	}
	if ignored > 0 {
		logrus.WithField("count", ignored).Debug("Entries ignored")
	}
	return entries
}

func decodeEntry(n *yaml.Node, binder ActionBinder) kv.Entry {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!str" {
			return kv.FromString(n.Value)
		}
	case yaml.SequenceNode:
		if len(n.Content) != 2 {
			break
		}
		key, value := resolve(n.Content[0]), resolve(n.Content[1])
		if isText(key) && isText(value) {
			return kv.Pair(key.Value, value.Value)
		}
	case yaml.MappingNode:
		var key, value, action *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			v := resolve(n.Content[i+1])
			switch n.Content[i].Value {
			case "key":
				key = v
			case "value":
				value = v
			case "action":
				action = v
			}
		}
		if !isText(key) || !isText(value) {
			break
		}
		e := kv.Pair(key.Value, value.Value)
		if binder != nil && isText(action) {
			e.Action = binder.Bind(action.Value, e.Key, e.Value)
		}
		return e
	}
	return kv.Ignored()
}

// isText accepts any non-null scalar, so `[Page, 5]` is a pair.
func isText(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag != "!!null"
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil {
		return &yaml.Node{}
	}
	return n
}

// Describe summarizes a document for logs.
func (d *Document) Describe() string {
	var pairs, seps, ignored int
	for _, e := range d.Entries {
		switch e.Kind {
		case kv.KindPair:
			pairs++
		case kv.KindSeparator:
			seps++
		default:
			ignored++
		}
	}
	parts := []string{fmt.Sprintf("%d pairs", pairs)}
	if seps > 0 {
		parts = append(parts, fmt.Sprintf("%d separators", seps))
	}
	if ignored > 0 {
		parts = append(parts, fmt.Sprintf("%d ignored", ignored))
	}
	return strings.Join(parts, ", ")
}
