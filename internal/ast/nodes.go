package ast

// VariableDeclaration represents a local variable declaration
// Example: "S storage s;" inside a function body
type VariableDeclaration struct {
	ID     NodeID
	Pos    Position
	EndPos Position
	Name   string
	Type   *TypeDescription
}

func (v *VariableDeclaration) NodeID() NodeID       { return v.ID }
func (v *VariableDeclaration) NodePos() Position    { return v.Pos }
func (v *VariableDeclaration) NodeEndPos() Position { return v.EndPos }

// Identifier represents a use of a name in an expression
// Example: "s" in "s.x = 1;"
type Identifier struct {
	ID     NodeID
	Pos    Position
	EndPos Position
	Name   string
}

func (i *Identifier) NodeID() NodeID       { return i.ID }
func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }

// InlineAssemblyStmt represents an inline assembly block together with the
// local variables it references from the surrounding function
type InlineAssemblyStmt struct {
	ID                 NodeID
	Pos                Position
	EndPos             Position
	ExternalReferences []*VariableDeclaration
}

func (s *InlineAssemblyStmt) NodeID() NodeID       { return s.ID }
func (s *InlineAssemblyStmt) NodePos() Position    { return s.Pos }
func (s *InlineAssemblyStmt) NodeEndPos() Position { return s.EndPos }

// FunctionBody marks the statement block of an implemented function.
// The control flow of the body is described by the cfg package; the
// analysis never walks the block structurally.
type FunctionBody struct {
	ID     NodeID
	Pos    Position
	EndPos Position
}

func (b *FunctionBody) NodeID() NodeID       { return b.ID }
func (b *FunctionBody) NodePos() Position    { return b.Pos }
func (b *FunctionBody) NodeEndPos() Position { return b.EndPos }

// FunctionDefinition represents a function of a contract
// Example: "function f() public { ... }"
type FunctionDefinition struct {
	ID     NodeID
	Pos    Position
	EndPos Position
	Name   string
	Params []*VariableDeclaration
	Body   *FunctionBody
}

func (f *FunctionDefinition) NodeID() NodeID       { return f.ID }
func (f *FunctionDefinition) NodePos() Position    { return f.Pos }
func (f *FunctionDefinition) NodeEndPos() Position { return f.EndPos }

// IsImplemented reports whether the function has a body. Functions without
// a body are declarations only and have no control flow to analyze.
func (f *FunctionDefinition) IsImplemented() bool {
	return f.Body != nil
}

// ContractDefinition represents a contract and the functions it defines
type ContractDefinition struct {
	ID        NodeID
	Pos       Position
	EndPos    Position
	Name      string
	Functions []*FunctionDefinition
}

func (c *ContractDefinition) NodeID() NodeID       { return c.ID }
func (c *ContractDefinition) NodePos() Position    { return c.Pos }
func (c *ContractDefinition) NodeEndPos() Position { return c.EndPos }

// SourceUnit is the root of a parsed and resolved translation unit
type SourceUnit struct {
	ID        NodeID
	Pos       Position
	EndPos    Position
	Contracts []*ContractDefinition
}

func (u *SourceUnit) NodeID() NodeID       { return u.ID }
func (u *SourceUnit) NodePos() Position    { return u.Pos }
func (u *SourceUnit) NodeEndPos() Position { return u.EndPos }

// Functions returns every function definition of the unit in declaration order
func (u *SourceUnit) Functions() []*FunctionDefinition {
	var fns []*FunctionDefinition
	for _, contract := range u.Contracts {
		fns = append(fns, contract.Functions...)
	}
	return fns
}
