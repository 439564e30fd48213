// Package flowtest builds control-flow fixtures from a compact textual
// notation, so tests can describe graphs the way they are drawn on paper:
//
//	var x storage;
//	entry: D(x) -> body cleanup;
//	body: R(x) -> exit;
//	cleanup: revert;
//
// D declares, A assigns, Y references in inline assembly, R accesses. A block
// either lists successors after "->" or ends in "revert", which routes it to
// the flow's revert node and thereby away from the exit.
package flowtest

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/Hugooboutot/solidity/internal/ast"
	"github.com/Hugooboutot/solidity/internal/cfg"
)

var sketchLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Arrow", `->`, nil},
		{"Punctuation", `[():;,]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

var sketchParser = participle.MustBuild[sketch](
	participle.Lexer(sketchLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)

type sketch struct {
	Items []*sketchItem `@@*`
}

type sketchItem struct {
	Var   *varDecl   `  @@`
	Block *blockDecl `| @@`
}

type varDecl struct {
	Pos      lexer.Position
	Name     string `"var" @Ident`
	Location string `@("storage" | "memory" | "calldata") ";"`
}

type blockDecl struct {
	Name        string            `@Ident ":"`
	Occurrences []*occurrenceMark `@@*`
	Term        *terminator       `[ @@ ] ";"`
}

type occurrenceMark struct {
	Pos lexer.Position
	Op  string `@("D" | "A" | "R" | "Y")`
	Var string `"(" @Ident ")"`
}

type terminator struct {
	Revert bool     `  @"revert"`
	Succs  []string `| "->" @Ident { @Ident }`
}

// Fixture is a single-function translation unit with a pre-built control
// flow, ready to be handed to the analyzer.
type Fixture struct {
	Unit     *ast.SourceUnit
	Function *ast.FunctionDefinition
	Flow     *cfg.FunctionFlow
	Registry *cfg.Registry

	Vars   map[string]*ast.VariableDeclaration
	Blocks map[string]*cfg.Node
	// Accesses lists the R occurrences of each variable in textual order
	Accesses map[string][]*cfg.VariableOccurrence
}

// Build parses a sketch and assembles the fixture. Node IDs are allocated in
// textual order, so occurrences that appear earlier in the sketch have
// smaller syntax node ids.
func Build(filename, src string) (*Fixture, error) {
	parsed, err := sketchParser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}

	alloc := ast.NewIDAllocator()
	pos := func(p lexer.Position) ast.Position {
		return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
	}
	origin := ast.Position{Filename: filename, Line: 1, Column: 1}

	fn := &ast.FunctionDefinition{
		ID:   alloc.Next(),
		Pos:  origin,
		Name: "sketch",
		Body: &ast.FunctionBody{ID: alloc.Next(), Pos: origin},
	}
	contract := &ast.ContractDefinition{
		ID:        alloc.Next(),
		Pos:       origin,
		Name:      "Sketch",
		Functions: []*ast.FunctionDefinition{fn},
	}
	unit := &ast.SourceUnit{
		ID:        alloc.Next(),
		Pos:       origin,
		Contracts: []*ast.ContractDefinition{contract},
	}

	container := &cfg.NodeContainer{}
	flow := &cfg.FunctionFlow{
		Entry:  container.NewNode(),
		Exit:   container.NewNode(),
		Revert: container.NewNode(),
	}

	fx := &Fixture{
		Unit:     unit,
		Function: fn,
		Flow:     flow,
		Registry: cfg.NewRegistry(),
		Vars:     make(map[string]*ast.VariableDeclaration),
		Blocks:   map[string]*cfg.Node{"entry": flow.Entry, "exit": flow.Exit},
		Accesses: make(map[string][]*cfg.VariableOccurrence),
	}
	fx.Registry.Register(fn, flow)

	block := func(name string) *cfg.Node {
		node, ok := fx.Blocks[name]
		if !ok {
			node = container.NewNode()
			fx.Blocks[name] = node
		}
		return node
	}

	defined := make(map[string]bool)
	referenced := make(map[string]bool)

	for _, item := range parsed.Items {
		switch {
		case item.Var != nil:
			decl := item.Var
			if _, dup := fx.Vars[decl.Name]; dup {
				return nil, fmt.Errorf("%s: variable %q declared twice", decl.Pos, decl.Name)
			}
			loc, err := parseLocation(decl.Location)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", decl.Pos, err)
			}
			fx.Vars[decl.Name] = &ast.VariableDeclaration{
				ID:   alloc.Next(),
				Pos:  pos(decl.Pos),
				Name: decl.Name,
				Type: &ast.TypeDescription{Name: "S", Location: loc},
			}

		case item.Block != nil:
			bd := item.Block
			if defined[bd.Name] {
				return nil, fmt.Errorf("block %q defined twice", bd.Name)
			}
			defined[bd.Name] = true
			node := block(bd.Name)
			for _, mark := range bd.Occurrences {
				decl, ok := fx.Vars[mark.Var]
				if !ok {
					return nil, fmt.Errorf("%s: unknown variable %q", mark.Pos, mark.Var)
				}
				occ, err := makeOccurrence(alloc, decl, mark, pos(mark.Pos))
				if err != nil {
					return nil, err
				}
				node.AddOccurrence(occ)
				if occ.Kind == cfg.Access {
					fx.Accesses[mark.Var] = append(fx.Accesses[mark.Var], occ)
				}
			}
			if bd.Term != nil {
				if bd.Term.Revert {
					node.AddSuccessor(flow.Revert)
				}
				for _, succ := range bd.Term.Succs {
					referenced[succ] = true
					node.AddSuccessor(block(succ))
				}
			}
		}
	}

	for name := range referenced {
		if !defined[name] && name != "exit" && name != "entry" {
			return nil, fmt.Errorf("block %q referenced but never defined", name)
		}
	}

	return fx, nil
}

// MustBuild is Build for fixtures known to be well-formed
func MustBuild(filename, src string) *Fixture {
	fx, err := Build(filename, src)
	if err != nil {
		panic(err)
	}
	return fx
}

func parseLocation(name string) (ast.DataLocation, error) {
	switch name {
	case "storage":
		return ast.Storage, nil
	case "memory":
		return ast.Memory, nil
	case "calldata":
		return ast.Calldata, nil
	default:
		return ast.DefaultLocation, fmt.Errorf("unknown data location %q", name)
	}
}

func makeOccurrence(alloc *ast.IDAllocator, decl *ast.VariableDeclaration, mark *occurrenceMark, at ast.Position) (*cfg.VariableOccurrence, error) {
	var kind cfg.OccurrenceKind
	switch mark.Op {
	case "D":
		kind = cfg.Declaration
	case "A":
		kind = cfg.Assignment
	case "R":
		kind = cfg.Access
	case "Y":
		kind = cfg.InlineAssembly
	default:
		return nil, fmt.Errorf("%s: unknown occurrence marker %q", mark.Pos, mark.Op)
	}
	occ := &cfg.VariableOccurrence{Decl: decl, Kind: kind}
	// Declarations are anchored by the declaration itself; the other kinds
	// get a fresh identifier node at the marker's position.
	if kind != cfg.Declaration {
		occ.Node = &ast.Identifier{ID: alloc.Next(), Pos: at, Name: mark.Var}
	}
	return occ, nil
}
