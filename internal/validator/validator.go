package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/fable/pkg/domain"
)

// DanglingTarget is a choice whose target names no declared node.
type DanglingTarget struct {
	Node   string
	Label  string
	Target string
}

func (d DanglingTarget) String() string {
	if d.Target == "" {
		return fmt.Sprintf("%s -[%s]-> (no target)", d.Node, d.Label)
	}
	return fmt.Sprintf("%s -[%s]-> %s", d.Node, d.Label, d.Target)
}

// Report lists the consistency problems found in a story graph.
type Report struct {
	// MissingStart is set when the graph has no usable start node.
	MissingStart bool
	// Dangling lists choices that lead nowhere, across the whole graph.
	Dangling []DanglingTarget
	// Unreachable lists nodes that no path from the start node visits.
	Unreachable []string
}

// OK reports whether the graph has no errors. Unreachable nodes are warnings.
func (r Report) OK() bool {
	return !r.MissingStart && len(r.Dangling) == 0
}

// Err converts the report into an error wrapping the matching sentinel.
func (r Report) Err() error {
	if r.MissingStart {
		return domain.ErrNoStartingNode
	}
	if len(r.Dangling) == 0 {
		return nil
	}
	lines := make([]string, 0, len(r.Dangling))
	for _, d := range r.Dangling {
		lines = append(lines, d.String())
	}
	return fmt.Errorf("%w: found %d:\n- %s", domain.ErrDanglingTarget, len(lines), strings.Join(lines, "\n- "))
}

// Check crawls the graph from its start node and reports dangling choice
// targets and unreachable nodes.
func Check(g *domain.StoryGraph) Report {
	var report Report

	for _, name := range g.Names() {
		node := g.Nodes[name]
		for _, c := range node.Choices {
			if _, ok := g.Node(c.Target); !ok {
				report.Dangling = append(report.Dangling, DanglingTarget{Node: name, Label: c.Label, Target: c.Target})
			}
		}
	}

	if !g.HasStart() {
		report.MissingStart = true
		return report
	}

	visited := make(map[string]bool)
	queue := []string{g.Start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		node, ok := g.Node(current)
		if !ok {
			continue // Reported as dangling above
		}
		for _, c := range node.Choices {
			if !visited[c.Target] {
				queue = append(queue, c.Target)
			}
		}
	}

	for name := range g.Nodes {
		if !visited[name] {
			report.Unreachable = append(report.Unreachable, name)
		}
	}
	sort.Strings(report.Unreachable)

	return report
}
