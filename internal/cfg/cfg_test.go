package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hugooboutot/solidity/internal/ast"
)

func TestAddSuccessorKeepsBothEdgeLists(t *testing.T) {
	var container NodeContainer
	a := container.NewNode()
	b := container.NewNode()

	a.AddSuccessor(b)

	assert.Equal(t, []*Node{b}, a.Exits)
	assert.Equal(t, []*Node{a}, b.Entries)
	assert.Equal(t, 2, container.Len())
}

func TestRegistryReturnsRegisteredFlow(t *testing.T) {
	var container NodeContainer
	flow := &FunctionFlow{Entry: container.NewNode(), Exit: container.NewNode()}
	fn := &ast.FunctionDefinition{ID: 1, Name: "f", Body: &ast.FunctionBody{ID: 2}}

	registry := NewRegistry()
	registry.Register(fn, flow)

	got, err := registry.FunctionFlow(fn)
	require.NoError(t, err)
	assert.Same(t, flow, got)
}

func TestRegistryErrorsOnUnknownFunction(t *testing.T) {
	registry := NewRegistry()
	fn := &ast.FunctionDefinition{ID: 1, Name: "ghost"}

	_, err := registry.FunctionFlow(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestOccurrenceKindStrings(t *testing.T) {
	assert.Equal(t, "declaration", Declaration.String())
	assert.Equal(t, "access", Access.String())
	assert.Equal(t, "assignment", Assignment.String())
	assert.Equal(t, "inline assembly", InlineAssembly.String())
	assert.Equal(t, "unknown", OccurrenceKind(42).String())
}

func TestKindOrdinalsAreStable(t *testing.T) {
	// The ordinal order is a tie-break key for diagnostic ordering.
	assert.Equal(t, OccurrenceKind(0), Declaration)
	assert.Equal(t, OccurrenceKind(1), Access)
	assert.Equal(t, OccurrenceKind(2), Assignment)
	assert.Equal(t, OccurrenceKind(3), InlineAssembly)
}
