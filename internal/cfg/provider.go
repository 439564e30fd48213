package cfg

import (
	"fmt"

	"github.com/Hugooboutot/solidity/internal/ast"
)

// Provider hands out the control flow of implemented functions. An error
// return means the provider has no well-formed flow for the function, which
// is a precondition violation on the caller side, not a user-facing
// diagnostic.
type Provider interface {
	FunctionFlow(fn *ast.FunctionDefinition) (*FunctionFlow, error)
}

// Registry is a map-backed Provider for flows that were built ahead of time
type Registry struct {
	flows map[*ast.FunctionDefinition]*FunctionFlow
}

func NewRegistry() *Registry {
	return &Registry{flows: make(map[*ast.FunctionDefinition]*FunctionFlow)}
}

// Register records the flow of a function, replacing any previous entry
func (r *Registry) Register(fn *ast.FunctionDefinition, flow *FunctionFlow) {
	r.flows[fn] = flow
}

// FunctionFlow implements Provider
func (r *Registry) FunctionFlow(fn *ast.FunctionDefinition) (*FunctionFlow, error) {
	flow, ok := r.flows[fn]
	if !ok {
		return nil, fmt.Errorf("no control flow recorded for function %q", fn.Name)
	}
	return flow, nil
}
