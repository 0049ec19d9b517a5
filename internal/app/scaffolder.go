package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/raffibedo/DirCraft/internal/ignore"
	"github.com/raffibedo/DirCraft/internal/parser"
	"github.com/raffibedo/DirCraft/internal/plan"
)

// Creation modes are fixed: the diagram format carries no permission
// information.
const (
	DirPerm  = os.FileMode(0o755)
	FilePerm = os.FileMode(0o644)
)

// FileSystem provides the write capabilities materialization needs.
type FileSystem interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// Blueprint is everything one diagram parse produced: surviving paths
// in line order, their comments, and the classified creation plan.
type Blueprint struct {
	Paths       []string
	Comments    map[string]string
	Directories []string
	Files       []string
}

// Summary reports what materialization did.
type Summary struct {
	Directories int
	Files       int
	Elapsed     time.Duration
}

// Scaffolder orchestrates parsing a diagram and materializing it.
type Scaffolder struct {
	FS    FileSystem
	Clock func() time.Time
}

// Plan reads a diagram and produces a blueprint. Skip rules, when
// present, remove matching paths before classification; skipping a
// directory skips its whole subtree.
func (s Scaffolder) Plan(input io.Reader, skip *ignore.Matcher) (Blueprint, error) {
	if input == nil {
		return Blueprint{}, fmt.Errorf("input reader is required")
	}
	data, err := io.ReadAll(input)
	if err != nil {
		return Blueprint{}, fmt.Errorf("read input: %w", err)
	}

	parsed := parser.Parse(string(data))
	kept := filterPaths(parsed.Paths, skip)
	classified := plan.Classify(kept)

	return Blueprint{
		Paths:       kept,
		Comments:    parsed.Comments,
		Directories: classified.Directories,
		Files:       classified.Files,
	}, nil
}

// Apply materializes a blueprint under root: the root and every planned
// directory first, shallowest to deepest, then every file, created
// empty. Existing directories are left alone and existing files are
// truncated. There is no rollback; the first failure is returned as-is.
func (s Scaffolder) Apply(ctx context.Context, bp Blueprint, root string) (Summary, error) {
	if s.FS == nil {
		return Summary{}, fmt.Errorf("filesystem adapter is required")
	}
	if root == "" {
		return Summary{}, fmt.Errorf("destination root is required")
	}
	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}
	start := clock()

	if err := s.FS.MkdirAll(root, DirPerm); err != nil {
		return Summary{}, fmt.Errorf("create root %s: %w", root, err)
	}

	for _, dir := range bp.Directories {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		target := filepath.Join(root, filepath.FromSlash(dir))
		if err := s.FS.MkdirAll(target, DirPerm); err != nil {
			return Summary{}, fmt.Errorf("create directory %s: %w", target, err)
		}
		klog.V(1).Infof("created directory %s", target)
	}

	for _, file := range bp.Files {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		target := filepath.Join(root, filepath.FromSlash(file))
		if err := s.FS.WriteFile(target, nil, FilePerm); err != nil {
			return Summary{}, fmt.Errorf("create file %s: %w", target, err)
		}
		klog.V(1).Infof("created file %s", target)
	}

	return Summary{
		Directories: len(bp.Directories),
		Files:       len(bp.Files),
		Elapsed:     clock().Sub(start),
	}, nil
}

func filterPaths(paths []string, matcher *ignore.Matcher) []string {
	if matcher == nil || len(matcher.Rules()) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	skippedDirs := make([]string, 0)
	for _, p := range paths {
		if underSkipped(p, skippedDirs) {
			continue
		}
		isDir := strings.HasSuffix(p, "/")
		if matcher.Skip(p, isDir) {
			if isDir {
				skippedDirs = append(skippedDirs, p)
			}
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func underSkipped(p string, skippedDirs []string) bool {
	for _, dir := range skippedDirs {
		if strings.HasPrefix(p, dir) {
			return true
		}
	}
	return false
}
