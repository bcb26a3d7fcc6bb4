package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"csfmt/internal/config"
	"csfmt/internal/suppress"
	"csfmt/internal/syntax"
)

// TreeExt is the extension of serialized tree dumps produced by the host
// parser.
const TreeExt = ".cstree"

// FileResult is the suppression output for one tree dump.
type FileResult struct {
	Path    string
	Tree    *syntax.Tree
	Records []suppress.Record
	Err     error
}

// listTreeFiles returns the sorted list of tree dumps under dir, for
// deterministic output order.
func listTreeFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, TreeExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// SuppressFile decodes one tree dump and runs the policy chain over every
// node of the tree.
func SuppressFile(path string, opts config.Formatting) (*syntax.Tree, []suppress.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tree, err := syntax.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	runner := suppress.NewRunner(suppress.NewRule())
	list := suppress.NewList()
	runner.ApplyAll(list, tree, opts)
	return tree, list.Records(), nil
}

// SuppressDir runs SuppressFile over every dump under dir, jobs files at a
// time. Results keep the sorted file order regardless of completion order.
// Per-file decode failures land in FileResult.Err; only I/O walking errors
// and context cancellation abort the run.
func SuppressDir(ctx context.Context, dir string, opts config.Formatting, jobs int) ([]FileResult, error) {
	files, err := listTreeFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, records, err := SuppressFile(path, opts)
			results[i] = FileResult{Path: path, Tree: tree, Records: records, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
