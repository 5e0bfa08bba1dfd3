package gateway

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gopidesupavan/infrastructure-actions/internal/refstore"
)

// workflowHeader declares a disabled, manually-triggered job. The step lines
// are appended below "steps:".
const workflowHeader = `name: Dummy Workflow

on:
  workflow_dispatch:

jobs:
  dummy:
    if: false
    runs-on: ubuntu-latest
    steps:
`

// SynthesizeWorkflow renders the store as the dummy workflow document.
//
// One step line is emitted per reference whose expiry lies strictly beyond
// the horizon (so references already inside their final weeks are excluded
// pre-emptively, including any expiring today) and which is not flagged
// keep. Kept references are trusted as-is; listing them would only generate
// update noise. Step order follows store order.
//
// GitHub workflow YAML deviates from strict YAML (bare keys, fixed step
// indentation), so the document is assembled as literal text rather than
// through a serializer.
func (g *Gateway) SynthesizeWorkflow(store *refstore.Store) string {
	horizon := g.pol.Horizon(g.clock)

	var steps []string
	for _, entry := range store.Entries {
		for _, ref := range entry.Refs {
			if ref.ExpiresAt.After(horizon) && !ref.Keep {
				steps = append(steps, fmt.Sprintf("      - uses: %s@%s", entry.Name, ref.Ref))
			}
		}
	}

	return workflowHeader + strings.Join(steps, "\n")
}

// dummyDoc is the read-side shape of the dummy workflow: only the path down
// to the step list matters. Pointers distinguish a missing level from an
// empty one.
type dummyDoc struct {
	Jobs *struct {
		Dummy *struct {
			Steps []Step `yaml:"steps"`
		} `yaml:"dummy"`
	} `yaml:"jobs"`
}

// ReadDummySteps extracts the step records from the dummy workflow at path.
// The reader tolerates the documents SynthesizeWorkflow produces.
func ReadDummySteps(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, refstore.NewLoadError(refstore.ErrCodeNotFound, path, "cannot read dummy workflow", err)
	}

	var doc dummyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, refstore.NewLoadError(refstore.ErrCodeMalformed, path, "invalid YAML", err)
	}
	if doc.Jobs == nil || doc.Jobs.Dummy == nil {
		return nil, refstore.NewLoadError(refstore.ErrCodeBadShape, path, "missing jobs.dummy.steps", nil)
	}
	return doc.Jobs.Dummy.Steps, nil
}
