package plan

import (
	"sort"
	"strings"
)

// Plan partitions parsed paths into what materialization needs:
// directories sorted shallowest-first and files in input order.
type Plan struct {
	Directories []string
	Files       []string
}

// Classify splits paths into directories and files. Paths with a
// trailing slash are directories; everything else is a file. Each file
// also implies its ancestor chain, so a file listed without its folder
// ever appearing on its own line still gets that folder created. The
// directory order is stable: first encounter, then a stable sort by
// separator count so shallower directories come first.
func Classify(paths []string) Plan {
	result := Plan{Directories: make([]string, 0), Files: make([]string, 0)}
	seen := make(map[string]struct{})

	addDir := func(dir string) {
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		result.Directories = append(result.Directories, dir)
	}

	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			addDir(p)
			continue
		}
		result.Files = append(result.Files, p)
		for dir := p; ; {
			i := strings.LastIndex(dir, "/")
			if i <= 0 {
				break
			}
			dir = dir[:i]
			addDir(dir + "/")
		}
	}

	sort.SliceStable(result.Directories, func(i, j int) bool {
		return strings.Count(result.Directories[i], "/") < strings.Count(result.Directories[j], "/")
	})

	return result
}
