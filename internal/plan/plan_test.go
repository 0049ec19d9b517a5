package plan

import (
	"reflect"
	"testing"
)

func TestClassifyPartitionsDirsAndFiles(t *testing.T) {
	paths := []string{
		"project/",
		"project/src/",
		"project/src/components/",
		"project/src/components/Button.js",
		"project/src/components/Input.js",
		"project/src/index.js",
		"project/package.json",
	}

	result := Classify(paths)

	wantDirs := []string{"project/", "project/src/", "project/src/components/"}
	if !reflect.DeepEqual(result.Directories, wantDirs) {
		t.Fatalf("expected directories %v, got %v", wantDirs, result.Directories)
	}

	wantFiles := []string{
		"project/src/components/Button.js",
		"project/src/components/Input.js",
		"project/src/index.js",
		"project/package.json",
	}
	if !reflect.DeepEqual(result.Files, wantFiles) {
		t.Fatalf("expected files %v, got %v", wantFiles, result.Files)
	}
}

func TestClassifyImpliesMissingParents(t *testing.T) {
	result := Classify([]string{"a/b/c.txt"})

	wantDirs := []string{"a/", "a/b/"}
	if !reflect.DeepEqual(result.Directories, wantDirs) {
		t.Fatalf("expected implied parents %v, got %v", wantDirs, result.Directories)
	}
	if !reflect.DeepEqual(result.Files, []string{"a/b/c.txt"}) {
		t.Fatalf("unexpected files %v", result.Files)
	}
}

func TestClassifyDeduplicatesDirectories(t *testing.T) {
	result := Classify([]string{"a/", "a/b.txt", "a/c.txt"})
	if !reflect.DeepEqual(result.Directories, []string{"a/"}) {
		t.Fatalf("expected a single directory, got %v", result.Directories)
	}
}

func TestClassifySortIsStableWithinDepth(t *testing.T) {
	result := Classify([]string{"zeta/", "alpha/", "zeta/deep/"})
	want := []string{"zeta/", "alpha/", "zeta/deep/"}
	if !reflect.DeepEqual(result.Directories, want) {
		t.Fatalf("expected stable depth order %v, got %v", want, result.Directories)
	}
}

func TestClassifyEmpty(t *testing.T) {
	result := Classify(nil)
	if len(result.Directories) != 0 || len(result.Files) != 0 {
		t.Fatalf("expected empty plan, got %v", result)
	}
}
