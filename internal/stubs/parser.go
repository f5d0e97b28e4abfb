package stubs

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Validate reports whether source parses as syntactically valid Python.
// A stub that fails validation must never be edited.
func Validate(ctx context.Context, source []byte) (bool, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return false, fmt.Errorf("failed to parse stub: %w", err)
	}
	return !tree.RootNode().HasError(), nil
}

// ClassNames enumerates the class definitions in source, in file order.
func ClassNames(ctx context.Context, source []byte) ([]string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stub: %w", err)
	}

	query, err := sitter.NewQuery([]byte(`(class_definition name: (identifier) @name)`), python.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	var names []string
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			names = append(names, c.Node.Content(source))
		}
	}
	return names, nil
}
