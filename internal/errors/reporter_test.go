package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hugooboutot/solidity/internal/ast"
)

func TestReporterPreservesEmissionOrder(t *testing.T) {
	r := NewReporter()
	r.TypeError(ErrorUninitializedStorageAccess, ast.Position{Line: 3}, "first")
	r.Warning("E0801", ast.Position{Line: 1}, "second")
	r.TypeError(ErrorUninitializedStorageAccess, ast.Position{Line: 2}, "third")

	errs := r.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, "first", errs[0].Message)
	assert.Equal(t, "second", errs[1].Message)
	assert.Equal(t, "third", errs[2].Message)
}

func TestContainsOnlyWarnings(t *testing.T) {
	r := NewReporter()
	assert.True(t, r.ContainsOnlyWarnings(), "empty reporter has no errors")

	r.Warning("E0801", ast.Position{Line: 1}, "just a warning")
	assert.True(t, r.ContainsOnlyWarnings())

	r.TypeError(ErrorUninitializedStorageAccess, ast.Position{Line: 2}, "an error")
	assert.False(t, r.ContainsOnlyWarnings())

	r.Clear()
	assert.True(t, r.ContainsOnlyWarnings())
	assert.Empty(t, r.Errors())
}

func TestTypeErrorWithSecondaryKeepsLocations(t *testing.T) {
	r := NewReporter()
	declPos := ast.Position{Filename: "c.sol", Line: 2, Column: 5}
	r.TypeErrorWithSecondary(ErrorUninitializedStorageAccess, ast.Position{Filename: "c.sol", Line: 4, Column: 9},
		[]SecondaryLocation{{Message: "The variable was declared here.", Position: declPos}},
		"This variable is of storage pointer type and is accessed without prior assignment.")

	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, Error, errs[0].Level)
	assert.Equal(t, ErrorUninitializedStorageAccess, errs[0].Code)
	require.Len(t, errs[0].Secondary, 1)
	assert.Equal(t, declPos, errs[0].Secondary[0].Position)
}

func TestInternalErrorIsErrorLevel(t *testing.T) {
	r := NewReporter()
	r.InternalError(ast.Position{Line: 1}, "control flow of function \"f\" is malformed")

	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorInternalCompiler, errs[0].Code)
	assert.False(t, r.ContainsOnlyWarnings())
}
