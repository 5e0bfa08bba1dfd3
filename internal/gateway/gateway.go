package gateway

import (
	"github.com/gopidesupavan/infrastructure-actions/internal/ghalog"
	"github.com/gopidesupavan/infrastructure-actions/internal/policy"
	"github.com/gopidesupavan/infrastructure-actions/internal/refstore"
)

// Gateway bundles the clock, expiry policy, and job-log reporter shared by
// all operations. Construct with New for production behavior or NewWith to
// pin any collaborator in tests.
type Gateway struct {
	clock policy.Clock
	pol   policy.Policy
	log   *ghalog.Logger
}

// New returns a Gateway on the system clock with the default expiry windows,
// reporting to the GitHub Actions job log when running inside one.
func New() *Gateway {
	return NewWith(policy.SystemClock{}, policy.Default(), ghalog.New())
}

// NewWith returns a Gateway with explicit collaborators.
func NewWith(clock policy.Clock, pol policy.Policy, log *ghalog.Logger) *Gateway {
	return &Gateway{clock: clock, pol: pol, log: log}
}

// UpdateActions merges the steps of the dummy workflow at dummyPath into the
// actions file at actionsPath and writes the file back in full.
func (g *Gateway) UpdateActions(dummyPath, actionsPath string) error {
	steps, err := ReadDummySteps(dummyPath)
	if err != nil {
		return err
	}
	store, err := refstore.Load(actionsPath)
	if err != nil {
		return err
	}

	if err := g.UpdateRefs(steps, store); err != nil {
		return err
	}

	rendered, err := refstore.Marshal(store)
	if err != nil {
		return err
	}
	g.log.Group("Generated List", string(rendered))

	return refstore.Save(actionsPath, store)
}

// CleanActions prunes expired references from the actions file at
// actionsPath and writes the file back in full.
func (g *Gateway) CleanActions(actionsPath string) error {
	store, err := refstore.Load(actionsPath)
	if err != nil {
		return err
	}

	g.RemoveExpiredRefs(store)

	rendered, err := refstore.Marshal(store)
	if err != nil {
		return err
	}
	g.log.Group("Cleaned Actions", string(rendered))

	return refstore.Save(actionsPath, store)
}

// UpdatePatterns regenerates the pattern file at patternPath from the
// actions file at actionsPath. Manual edits to the pattern file are lost.
func (g *Gateway) UpdatePatterns(patternPath, actionsPath string) error {
	store, err := refstore.Load(actionsPath)
	if err != nil {
		return err
	}

	content, err := g.PatternContent(store)
	if err != nil {
		return err
	}
	g.log.Group("Generated Patterns", content)

	return refstore.WriteText(patternPath, content)
}

// UpdateWorkflow regenerates the dummy workflow at dummyPath from the
// actions file at actionsPath. Manual edits to the workflow are lost.
func (g *Gateway) UpdateWorkflow(dummyPath, actionsPath string) error {
	store, err := refstore.Load(actionsPath)
	if err != nil {
		return err
	}

	workflow := g.SynthesizeWorkflow(store)
	g.log.Group("Generated Workflow", workflow)

	return refstore.WriteText(dummyPath, workflow)
}
