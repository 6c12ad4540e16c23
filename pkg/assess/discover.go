package assess

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// MutantPrefix is the reserved name token marking a declaration as a broken
// asset. The match is case-insensitive, so "_TestOffByOne" and "_testNoop"
// both qualify.
const MutantPrefix = "_test"

// AssetKind classifies a discovered mutant declaration.
type AssetKind string

// Discoverable asset kinds.
const (
	AssetFunction AssetKind = "function"
	AssetType     AssetKind = "type"
)

// Asset is a mutant declaration discovered in a source file.
type Asset struct {
	// Name is the declared identifier.
	Name string `json:"name"`
	// Kind is the declaration kind.
	Kind AssetKind `json:"kind"`
	// Doc is the declaration's doc comment, used as the grading hint.
	Doc string `json:"doc,omitempty"`
	// Line is the 1-based line of the declaration.
	Line int `json:"line"`
}

// ScanFile parses a Go source file and returns the mutant assets declared
// directly at its top level: functions and types whose names carry the
// reserved prefix. Nested declarations never qualify, which keeps imported
// helpers out of the parametrization.
func ScanFile(ctx context.Context, path string) ([]Asset, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	assets, err := ScanSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return assets, nil
}

// ScanSource parses Go source text and returns its top-level mutant assets
// in declaration order.
func ScanSource(ctx context.Context, source []byte) ([]Asset, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	var assets []Asset

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)

		name, kind := declaredName(child, source)
		if name == "" || !strings.HasPrefix(strings.ToLower(name), MutantPrefix) {
			continue
		}

		assets = append(assets, Asset{
			Name: name,
			Kind: kind,
			Doc:  docComment(root, i, source),
			Line: int(child.StartPoint().Row) + 1,
		})
	}

	return assets, nil
}

func declaredName(node *sitter.Node, source []byte) (string, AssetKind) {
	switch node.Type() {
	case "function_declaration":
		name := node.ChildByFieldName("name")
		if name == nil {
			return "", ""
		}
		return name.Content(source), AssetFunction
	case "type_declaration":
		for i := 0; i < int(node.ChildCount()); i++ {
			spec := node.Child(i)
			if spec.Type() != "type_spec" {
				continue
			}
			name := spec.ChildByFieldName("name")
			if name == nil {
				return "", ""
			}
			return name.Content(source), AssetType
		}
		return "", ""
	default:
		return "", ""
	}
}

// docComment collects the contiguous comment block directly above the
// declaration at index i and strips the comment markers.
func docComment(root *sitter.Node, i int, source []byte) string {
	var lines []string
	expectedRow := root.Child(i).StartPoint().Row

	for j := i - 1; j >= 0; j-- {
		prev := root.Child(j)
		if prev.Type() != "comment" || prev.EndPoint().Row+1 != expectedRow {
			break
		}
		lines = append([]string{trimCommentMarkers(prev.Content(source))}, lines...)
		expectedRow = prev.StartPoint().Row
	}

	return strings.Join(lines, "\n")
}

func trimCommentMarkers(comment string) string {
	comment = strings.TrimPrefix(comment, "//")
	comment = strings.TrimPrefix(comment, "/*")
	comment = strings.TrimSuffix(comment, "*/")
	return strings.TrimSpace(comment)
}
