package refstore

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

// dateLayout is the canonical expires_at format on write.
const dateLayout = "2006-01-02"

// Marshal serializes the store to YAML, names and references in their
// current in-memory order. Keys are never re-sorted.
func Marshal(s *Store) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for i := range s.Entries {
		entry := &s.Entries[i]
		refs := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, ref := range entry.Refs {
			refs.Content = append(refs.Content,
				scalar("!!str", ref.Ref),
				detailsNode(ref),
			)
		}
		root.Content = append(root.Content, scalar("!!str", entry.Name), refs)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save serializes the store and fully overwrites the file at path.
func Save(path string, s *Store) error {
	data, err := Marshal(s)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteText fully overwrites the file at path with literal content. Used for
// the artifacts whose exact layout is hand-assembled (the dummy workflow and
// the pattern file) rather than produced by a serializer.
func WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func detailsNode(ref Ref) *yaml.Node {
	keep := "false"
	if ref.Keep {
		keep = "true"
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalar("!!str", "expires_at"),
			scalar("!!timestamp", ref.ExpiresAt.Format(dateLayout)),
			scalar("!!str", "keep"),
			scalar("!!bool", keep),
		},
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
