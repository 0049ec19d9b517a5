package tree

import (
	"bytes"
	"testing"
)

var examplePaths = []string{
	"project/",
	"project/src/",
	"project/src/components/",
	"project/src/components/Button.js",
	"project/src/components/Input.js",
	"project/src/index.js",
	"project/package.json",
}

var exampleComments = map[string]string{
	"project/src/components/Button.js": "Button component",
	"project/package.json":             "Project dependencies",
}

func TestBuildAttachesTypesAndComments(t *testing.T) {
	root := Build(examplePaths, exampleComments)

	if len(root.Children) != 1 {
		t.Fatalf("expected one top-level entry, got %d", len(root.Children))
	}
	project := root.Children[0]
	if project.Name != "project" || project.Type != "dir" {
		t.Fatalf("unexpected root node %+v", project)
	}

	// Directories sort before files.
	if project.Children[0].Name != "src" || project.Children[1].Name != "package.json" {
		t.Fatalf("unexpected child order: %s, %s",
			project.Children[0].Name, project.Children[1].Name)
	}
	if got := project.Children[1].Comment; got != "Project dependencies" {
		t.Fatalf("expected package.json comment, got %q", got)
	}
}

func TestBuildPromotesImplicitDirs(t *testing.T) {
	root := Build([]string{"a/b.txt", "a/"}, nil)

	a := root.Children[0]
	if a.Name != "a" || a.Type != "dir" {
		t.Fatalf("expected dir node for a, got %+v", a)
	}
	if len(a.Children) != 1 || a.Children[0].Type != "file" {
		t.Fatalf("expected file child under a, got %+v", a.Children)
	}
}

// Rendering the built tree reproduces the diagram format the parser
// accepts, comments included.
func TestRenderRoundTripsExample(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Build(examplePaths, exampleComments))

	want := `project/
├── src/
│   ├── components/
│   │   ├── Button.js # Button component
│   │   └── Input.js
│   └── index.js
└── package.json # Project dependencies
`
	if buf.String() != want {
		t.Fatalf("unexpected render output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Build(nil, nil))
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
