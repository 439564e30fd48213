package controlflow

import (
	"fmt"
	"sort"

	"github.com/Hugooboutot/solidity/internal/ast"
	"github.com/Hugooboutot/solidity/internal/cfg"
	"github.com/Hugooboutot/solidity/internal/errors"
)

// Analyzer checks the control flow of every implemented function for accesses
// to storage pointer variables that may happen before any assignment. It does
// not build control flow itself; a cfg.Provider hands it finished graphs.
type Analyzer struct {
	reporter *errors.Reporter
	flows    cfg.Provider
}

func NewAnalyzer(reporter *errors.Reporter, flows cfg.Provider) *Analyzer {
	return &Analyzer{
		reporter: reporter,
		flows:    flows,
	}
}

// Analyze walks every function definition of the unit in declaration order
// and checks the implemented ones. It returns true iff no error-level
// diagnostics have been reported.
func (a *Analyzer) Analyze(unit *ast.SourceUnit) bool {
	for _, fn := range unit.Functions() {
		if !fn.IsImplemented() {
			continue
		}
		flow, err := a.flows.FunctionFlow(fn)
		if err != nil {
			a.reporter.InternalError(fn.Pos, fmt.Sprintf("control flow of function %q unavailable: %v", fn.Name, err))
			continue
		}
		if flow == nil || flow.Entry == nil || flow.Exit == nil {
			a.reporter.InternalError(fn.Pos, fmt.Sprintf("control flow of function %q is missing entry or exit", fn.Name))
			continue
		}
		if err := a.checkUninitializedAccess(flow.Entry, flow.Exit); err != nil {
			a.reporter.InternalError(fn.Pos, fmt.Sprintf("control flow of function %q is malformed: %v", fn.Name, err))
		}
	}
	return a.reporter.ContainsOnlyWarnings()
}

// nodeInfo is the per-block state of the data-flow fixpoint: the variables
// possibly unassigned on some path into the block, and the storage pointer
// accesses observed so far while their variable was still unassigned.
type nodeInfo struct {
	unassignedVariables           map[*ast.VariableDeclaration]struct{}
	uninitializedVariableAccesses map[*cfg.VariableOccurrence]struct{}
}

// propagateFrom merges the state of a predecessor into this node by union.
// Returns true if either set grew, in which case the node has to be
// traversed again.
func (ni *nodeInfo) propagateFrom(pred *nodeInfo) bool {
	grown := false
	for decl := range pred.unassignedVariables {
		if _, ok := ni.unassignedVariables[decl]; !ok {
			ni.unassignedVariables[decl] = struct{}{}
			grown = true
		}
	}
	for occ := range pred.uninitializedVariableAccesses {
		if _, ok := ni.uninitializedVariableAccesses[occ]; !ok {
			ni.uninitializedVariableAccesses[occ] = struct{}{}
			grown = true
		}
	}
	return grown
}

// checkUninitializedAccess runs a forward may-analysis from entry and reports
// every storage pointer access that reaches exit while its variable is still
// possibly unassigned. Accesses are only recorded during propagation, never
// reported right away: a path might still always revert, and it is only an
// error if the access survives to the exit node.
func (a *Analyzer) checkUninitializedAccess(entry, exit *cfg.Node) error {
	nodeInfos := make(map[*cfg.Node]*nodeInfo)
	info := func(node *cfg.Node) *nodeInfo {
		ni, ok := nodeInfos[node]
		if !ok {
			ni = &nodeInfo{
				unassignedVariables:           make(map[*ast.VariableDeclaration]struct{}),
				uninitializedVariableAccesses: make(map[*cfg.VariableOccurrence]struct{}),
			}
			nodeInfos[node] = ni
		}
		return ni
	}

	nodesToTraverse := []*cfg.Node{entry}

	// Walk all paths until propagateFrom returns false for every successor,
	// i.e. until every path has been walked with maximal sets of unassigned
	// variables and accesses. Re-visits are bounded because both sets only
	// ever grow within finite universes.
	for len(nodesToTraverse) > 0 {
		currentNode := nodesToTraverse[len(nodesToTraverse)-1]
		nodesToTraverse = nodesToTraverse[:len(nodesToTraverse)-1]

		// The transfer works on a copy, so the stored state of the block
		// stays its in-state.
		out := &nodeInfo{
			unassignedVariables:           make(map[*ast.VariableDeclaration]struct{}),
			uninitializedVariableAccesses: make(map[*cfg.VariableOccurrence]struct{}),
		}
		out.propagateFrom(info(currentNode))
		for _, occurrence := range currentNode.VariableOccurrences {
			switch occurrence.Kind {
			case cfg.Assignment:
				delete(out.unassignedVariables, occurrence.Decl)
			case cfg.InlineAssembly:
				// Any variable referenced in inline assembly counts as
				// assigned. We might want to check whether there actually
				// was an assignment in the future.
				delete(out.unassignedVariables, occurrence.Decl)
			case cfg.Access:
				if _, unassigned := out.unassignedVariables[occurrence.Decl]; unassigned {
					if occurrence.Decl.Type.DataStoredIn(ast.Storage) {
						out.uninitializedVariableAccesses[occurrence] = struct{}{}
					}
				}
			case cfg.Declaration:
				out.unassignedVariables[occurrence.Decl] = struct{}{}
			default:
				return fmt.Errorf("unexpected variable occurrence kind %d", occurrence.Kind)
			}
		}

		// Propagate changes to all successors and queue them for traversal
		// if their state grew.
		for _, succ := range currentNode.Exits {
			if info(succ).propagateFrom(out) {
				nodesToTraverse = append(nodesToTraverse, succ)
			}
		}
	}

	if exitInfo, ok := nodeInfos[exit]; ok {
		a.reportUninitializedAccesses(exitInfo.uninitializedVariableAccesses)
	}
	return nil
}

// reportUninitializedAccesses emits one type error per surviving access, in a
// deterministic order: by the id of the syntax node at which the access
// occurred, with occurrences lacking such a node ordered last, then by
// declaration id, then by occurrence kind.
func (a *Analyzer) reportUninitializedAccesses(accesses map[*cfg.VariableOccurrence]struct{}) {
	if len(accesses) == 0 {
		return
	}

	ordered := make([]*cfg.VariableOccurrence, 0, len(accesses))
	for occ := range accesses {
		ordered = append(ordered, occ)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		lhs, rhs := ordered[i], ordered[j]
		switch {
		case lhs.Node != nil && rhs.Node != nil:
			if lhs.Node.NodeID() != rhs.Node.NodeID() {
				return lhs.Node.NodeID() < rhs.Node.NodeID()
			}
		case lhs.Node != nil:
			return true
		case rhs.Node != nil:
			return false
		}
		if lhs.Decl.ID != rhs.Decl.ID {
			return lhs.Decl.ID < rhs.Decl.ID
		}
		return lhs.Kind < rhs.Kind
	})

	for _, occurrence := range ordered {
		pos := occurrence.Decl.Pos
		var secondary []errors.SecondaryLocation
		if occurrence.Node != nil {
			pos = occurrence.Node.NodePos()
			secondary = append(secondary, errors.SecondaryLocation{
				Message:  "The variable was declared here.",
				Position: occurrence.Decl.Pos,
			})
		}
		a.reporter.TypeErrorWithSecondary(
			errors.ErrorUninitializedStorageAccess,
			pos,
			secondary,
			"This variable is of storage pointer type and is accessed without prior assignment.",
		)
	}
}
