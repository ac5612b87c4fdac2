package cdhctl

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/edvin/cdhplugin/internal/model"
	"github.com/edvin/cdhplugin/internal/validation"
)

// maxParallelFiles bounds how many definitions are validated at once.
const maxParallelFiles = 8

// Result is the verdict for one cluster definition file.
type Result struct {
	Path    string
	Cluster string
	Err     error
}

// ValidateFiles runs the creation checks on every file concurrently. Results
// keep the order of paths. A file that cannot be loaded aborts the run.
func ValidateFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFiles)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := LoadCluster(path)
			if err != nil {
				return err
			}
			results[i] = Result{Path: path, Cluster: f.Cluster.Name, Err: validateCluster(&f.Cluster)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Validate checks every definition and prints one line per file.
func Validate(ctx context.Context, paths []string, out io.Writer) error {
	results, err := ValidateFiles(ctx, paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s (%s): %s\n", r.Path, r.Cluster, describe(r.Err))
			continue
		}
		fmt.Fprintf(out, "ok    %s (%s)\n", r.Path, r.Cluster)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cluster definitions failed validation", failed, len(results))
	}
	return nil
}

func validateCluster(c *model.Cluster) error {
	rules, err := validation.RulesFor(c.PluginVersion)
	if err != nil {
		return err
	}
	return validation.NewValidator(rules).ValidateClusterCreating(c)
}

// describe prefixes typed validation failures with their code.
func describe(err error) string {
	if code := validation.CodeOf(err); code != "" {
		return fmt.Sprintf("[%s] %s", code, err)
	}
	return err.Error()
}
