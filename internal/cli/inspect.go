package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/fable/internal/compiler"
	"github.com/aretw0/fable/internal/config"
	"github.com/aretw0/fable/internal/presentation/graph"
	"github.com/aretw0/fable/internal/validator"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/ports"
)

// loadGraph reads and builds a story without starting a session.
func loadGraph(ctx context.Context, loader ports.StoryLoader, name string) (*domain.StoryGraph, error) {
	data, err := loader.ReadStory(ctx, name)
	if err != nil {
		return nil, err
	}
	return compiler.NewParser().Parse(data)
}

// Validate checks a story and writes a human-readable report to out.
// Unreachable nodes are warnings; the returned error covers real defects.
func Validate(ctx context.Context, cfg config.Config, name string, out io.Writer) error {
	loader, closeLoader := createLoader(cfg)
	defer closeLoader()

	g, err := loadGraph(ctx, loader, name)
	if err != nil {
		return fmt.Errorf("[%s] %w", domain.KindOf(err), err)
	}

	report := validator.Check(g)
	for _, name := range report.Unreachable {
		fmt.Fprintf(out, "warning: node %q is unreachable from %q\n", name, g.Start)
	}
	if err := report.Err(); err != nil {
		return fmt.Errorf("[%s] %w", domain.KindOf(err), err)
	}
	fmt.Fprintf(out, "%s: %d nodes, start %q\n", name, len(g.Nodes), g.Start)
	return nil
}

// Graph writes a Mermaid diagram of a story to out.
func Graph(ctx context.Context, cfg config.Config, name, current string, out io.Writer) error {
	loader, closeLoader := createLoader(cfg)
	defer closeLoader()

	g, err := loadGraph(ctx, loader, name)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if current != "" {
		overlay = &graph.GraphOverlay{CurrentNode: current}
	}
	_, err = io.WriteString(out, graph.GenerateMermaid(g, overlay))
	return err
}

// ListStories writes the names the configured source can load, one per line.
func ListStories(ctx context.Context, cfg config.Config, out io.Writer) error {
	loader, closeLoader := createLoader(cfg)
	defer closeLoader()

	lister, ok := loader.(ports.StoryLister)
	if !ok {
		return fmt.Errorf("story source cannot list stories")
	}
	names, err := lister.ListStories(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	return nil
}
