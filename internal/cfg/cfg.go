package cfg

import (
	"github.com/Hugooboutot/solidity/internal/ast"
)

// OccurrenceKind classifies how a variable appears in a block of control flow.
// The numeric order of the kinds is part of the diagnostic ordering contract
// and must not be rearranged.
type OccurrenceKind int

const (
	Declaration OccurrenceKind = iota
	Access
	Assignment
	InlineAssembly
)

func (k OccurrenceKind) String() string {
	switch k {
	case Declaration:
		return "declaration"
	case Access:
		return "access"
	case Assignment:
		return "assignment"
	case InlineAssembly:
		return "inline assembly"
	default:
		return "unknown"
	}
}

// VariableOccurrence records one appearance of a local variable in a block.
// Node is the syntax node at which the variable occurred, if available; it is
// typically nil for Declaration occurrences, in which case consumers fall back
// to the declaration's own location.
type VariableOccurrence struct {
	Decl *ast.VariableDeclaration
	Kind OccurrenceKind
	Node ast.Node
}

// Node is a basic block of the control-flow graph. An edge between two nodes
// means control may move from its start node to its end node during execution.
type Node struct {
	// Entries are all nodes from which control flow may move into this node
	Entries []*Node
	// Exits are all nodes to which control flow may continue after this node
	Exits []*Node

	// VariableOccurrences in this block, in program order
	VariableOccurrences []*VariableOccurrence
}

// AddSuccessor connects n to succ and keeps both edge lists consistent
func (n *Node) AddSuccessor(succ *Node) {
	n.Exits = append(n.Exits, succ)
	succ.Entries = append(succ.Entries, n)
}

// AddOccurrence appends an occurrence to the block
func (n *Node) AddOccurrence(occ *VariableOccurrence) {
	n.VariableOccurrences = append(n.VariableOccurrences, occ)
}

// FunctionFlow describes the control flow of one function.
type FunctionFlow struct {
	// Entry node. Control flow of the function starts here; it has no entries.
	Entry *Node
	// Exit node. All normal-return control flow of the function ends here.
	// It has no exits but may have multiple entries (e.g. every return
	// statement of the function).
	Exit *Node
	// Revert node. Control flow in case of revert ends here; paths reaching
	// it never flow into Exit.
	Revert *Node
}

// NodeContainer owns every block allocated for a graph
type NodeContainer struct {
	nodes []*Node
}

// NewNode allocates a block owned by the container
func (c *NodeContainer) NewNode() *Node {
	node := &Node{}
	c.nodes = append(c.nodes, node)
	return node
}

// Len returns the number of blocks allocated so far
func (c *NodeContainer) Len() int {
	return len(c.nodes)
}
