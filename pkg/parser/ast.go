package parser

import (
	"fmt"

	"numem/pkg/lexer"
	"numem/pkg/memory"
)

type StmtKind int

const (
	StmtAssign  StmtKind = iota // ref = expr
	StmtRead                    // ref
	StmtAddrOf                  // addr name
	StmtCommand                 // print, map, dump, size, capacity
)

// Ref names a memory cell, either through a variable or a raw address (@n).
type Ref struct {
	Name   string
	Addr   int
	ByAddr bool
}

func (r Ref) String() string {
	if r.ByAddr {
		return fmt.Sprintf("@%d", r.Addr)
	}
	return r.Name
}

// Expr is the right-hand side of an assignment: a literal or a reference.
type Expr struct {
	IsRef bool
	Ref   Ref
	Value memory.Value
}

type Statement struct {
	Kind    StmtKind
	Target  Ref             // assignment target, read or addr operand
	Expr    Expr            // assignment source
	Command lexer.TokenType // for StmtCommand
	Pos     lexer.Position
}

func (s Statement) String() string {
	switch s.Kind {
	case StmtAssign:
		if s.Expr.IsRef {
			return fmt.Sprintf("%s = %s", s.Target, s.Expr.Ref)
		}
		return fmt.Sprintf("%s = %s", s.Target, s.Expr.Value)
	case StmtRead:
		return s.Target.String()
	case StmtAddrOf:
		return "addr " + s.Target.Name
	default:
		return s.Command.String()
	}
}
