package refstore

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gopidesupavan/infrastructure-actions/internal/policy"
)

// Accepted expires_at layouts. The writer always emits the first; the reader
// tolerates hand-edited variants YAML still resolves as timestamps.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
}

// Load reads and parses the actions file at path.
//
// Names and references are kept in file order. A missing or unreadable file
// is a *LoadError with ErrCodeNotFound; malformed content is ErrCodeMalformed
// or ErrCodeBadShape. Nothing is written on failure.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(ErrCodeNotFound, path, "cannot read actions file", err)
	}
	return Parse(path, data)
}

// Parse parses actions-file content. The path is used only for error
// reporting.
func Parse(path string, data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewLoadError(ErrCodeMalformed, path, "invalid YAML", err)
	}

	// An empty document is an empty allow-list.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return New(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, NewLoadError(ErrCodeBadShape, path,
			fmt.Sprintf("top level must be a mapping of action names, got %s", kindName(root.Kind)), nil)
	}

	store := New()
	for i := 0; i < len(root.Content); i += 2 {
		nameNode, refsNode := root.Content[i], root.Content[i+1]
		name := nameNode.Value

		if store.Lookup(name) != nil {
			return nil, NewLoadError(ErrCodeBadShape, path,
				fmt.Sprintf("line %d: duplicate action name %q", nameNode.Line, name), nil)
		}
		if refsNode.Kind != yaml.MappingNode {
			return nil, NewLoadError(ErrCodeBadShape, path,
				fmt.Sprintf("line %d: action %q must map references to details, got %s",
					refsNode.Line, name, kindName(refsNode.Kind)), nil)
		}

		entry := store.Ensure(name)
		for j := 0; j < len(refsNode.Content); j += 2 {
			refNode, detailsNode := refsNode.Content[j], refsNode.Content[j+1]

			if entry.Has(refNode.Value) {
				return nil, NewLoadError(ErrCodeBadShape, path,
					fmt.Sprintf("line %d: duplicate reference %q for action %q",
						refNode.Line, refNode.Value, name), nil)
			}

			ref, err := parseDetails(path, name, refNode.Value, detailsNode)
			if err != nil {
				return nil, err
			}
			entry.Refs = append(entry.Refs, ref)
		}
	}

	return store, nil
}

// parseDetails decodes one reference's details mapping. expires_at is
// required; keep is optional and defaults to false. Unknown fields are
// ignored (shape assumptions only, no schema validation).
func parseDetails(path, name, refName string, node *yaml.Node) (Ref, error) {
	if node.Kind != yaml.MappingNode {
		return Ref{}, NewLoadError(ErrCodeBadShape, path,
			fmt.Sprintf("line %d: details for %s@%s must be a mapping, got %s",
				node.Line, name, refName, kindName(node.Kind)), nil)
	}

	ref := Ref{Ref: refName}
	sawExpiry := false

	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "expires_at":
			day, err := parseDate(value.Value)
			if err != nil {
				return Ref{}, NewLoadError(ErrCodeBadDate, path,
					fmt.Sprintf("line %d: expires_at for %s@%s: %q is not a date",
						value.Line, name, refName, value.Value), err)
			}
			ref.ExpiresAt = day
			sawExpiry = true
		case "keep":
			keep, err := strconv.ParseBool(value.Value)
			if err != nil {
				return Ref{}, NewLoadError(ErrCodeBadShape, path,
					fmt.Sprintf("line %d: keep for %s@%s: %q is not a boolean",
						value.Line, name, refName, value.Value), err)
			}
			ref.Keep = keep
		}
	}

	if !sawExpiry {
		return Ref{}, NewLoadError(ErrCodeBadShape, path,
			fmt.Sprintf("line %d: %s@%s is missing expires_at", node.Line, name, refName), nil)
	}
	return ref, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return policy.Midnight(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
