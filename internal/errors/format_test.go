package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hugooboutot/solidity/internal/ast"
)

func TestFormatRendersHeaderAndLocation(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	source := "contract C {\n    function f() public {\n        s.x = 1;\n    }\n}"
	f := NewFormatter("c.sol", source)

	out := f.Format(CompilerError{
		Level:    Error,
		Code:     ErrorUninitializedStorageAccess,
		Message:  "This variable is of storage pointer type and is accessed without prior assignment.",
		Position: ast.Position{Filename: "c.sol", Line: 3, Column: 9},
		Length:   1,
	})

	assert.Contains(t, out, "error[E0601]:")
	assert.Contains(t, out, "c.sol:3:9")
	assert.Contains(t, out, "s.x = 1;")
	assert.Contains(t, out, "^")
}

func TestFormatRendersSecondaryLocations(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	source := "S storage s;\ns.x = 1;"
	f := NewFormatter("c.sol", source)

	out := f.Format(CompilerError{
		Level:    Error,
		Code:     ErrorUninitializedStorageAccess,
		Message:  "This variable is of storage pointer type and is accessed without prior assignment.",
		Position: ast.Position{Filename: "c.sol", Line: 2, Column: 1},
		Length:   1,
		Secondary: []SecondaryLocation{{
			Message:  "The variable was declared here.",
			Position: ast.Position{Filename: "c.sol", Line: 1, Column: 1},
		}},
	})

	assert.Contains(t, out, "note: The variable was declared here.")
	assert.Contains(t, out, "c.sol:1:1")
	assert.Contains(t, out, "S storage s;")
}

func TestFormatAllConcatenatesInOrder(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewFormatter("c.sol", "line one\nline two")
	errs := []CompilerError{
		{Level: Error, Code: "E0601", Message: "first", Position: ast.Position{Line: 1, Column: 1}},
		{Level: Warning, Code: "E0801", Message: "second", Position: ast.Position{Line: 2, Column: 1}},
	}

	out := f.FormatAll(errs)
	require.Contains(t, out, "first")
	require.Contains(t, out, "second")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	assert.Contains(t, out, "warning[E0801]:")
}
