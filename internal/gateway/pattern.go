package gateway

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gopidesupavan/infrastructure-actions/internal/refstore"
)

// patternComment is the warning prepended to the generated pattern file.
const patternComment = "# This is a generated file. DO NOT UPDATE MANUALLY.\n"

// Pattern returns the "name@ref" strings for every reference that is still
// valid today (today strictly before expires_at) or flagged keep, in store
// order. The result is never nil.
func (g *Gateway) Pattern(store *refstore.Store) []string {
	today := g.clock.Today()

	patterns := []string{}
	for _, entry := range store.Entries {
		for _, ref := range entry.Refs {
			if today.Before(ref.ExpiresAt) || ref.Keep {
				patterns = append(patterns, fmt.Sprintf("%s@%s", entry.Name, ref.Ref))
			}
		}
	}
	return patterns
}

// PatternContent renders the pattern file: the generated-file warning
// comment followed by the patterns as a YAML list.
func (g *Gateway) PatternContent(store *refstore.Store) (string, error) {
	data, err := yaml.Marshal(g.Pattern(store))
	if err != nil {
		return "", err
	}
	return patternComment + string(data), nil
}
