// Package consteval folds constant expressions to unsigned integer values.
// It is deliberately conservative: anything it cannot prove (unknown names,
// overflow, negative results, cycles) evaluates to "unresolved" rather than
// a guess.
package consteval

import (
	"math/bits"
	"strconv"
	"strings"

	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/source"
)

// Evaluator resolves expressions against the const items of a parsed file.
type Evaluator struct {
	b        *ast.Builder
	reporter diag.Reporter
	consts   map[source.StringID]*ast.ConstItem
	visiting map[source.StringID]bool
	excluded map[source.StringID]bool
}

// New constructs an evaluator over the builder's arenas. reporter may be nil.
func New(b *ast.Builder, reporter diag.Reporter) *Evaluator {
	return &Evaluator{
		b:        b,
		reporter: reporter,
		consts:   make(map[source.StringID]*ast.ConstItem),
		visiting: make(map[source.StringID]bool),
	}
}

// CollectFile indexes the const items of a file so identifier references
// resolve. Later declarations shadow earlier ones with the same name.
func (e *Evaluator) CollectFile(f *ast.File) {
	if f == nil {
		return
	}
	for _, itemID := range f.Items {
		if c, ok := e.b.Const(itemID); ok {
			e.consts[c.Name] = c
		}
	}
}

// UintExcluding evaluates like Uint but treats the given names as
// unresolvable. Callers pass names bound more locally than the file-level
// const table (generic parameters), which must shadow same-named consts
// instead of resolving through them.
func (e *Evaluator) UintExcluding(id ast.ExprID, names map[source.StringID]bool) (uint64, bool) {
	e.excluded = names
	v, ok := e.Uint(id)
	e.excluded = nil
	return v, ok
}

// Uint evaluates an expression to a uint64. The second result is false when
// the expression does not fold to a non-negative 64-bit integer.
func (e *Evaluator) Uint(id ast.ExprID) (uint64, bool) {
	expr := e.b.Exprs.Get(uint32(id))
	if expr == nil {
		return 0, false
	}
	switch expr.Kind {
	case ast.ExprLit:
		return parseUintLiteral(e.b.LookupName(expr.Value))
	case ast.ExprIdent:
		return e.namedConst(expr)
	case ast.ExprGroup:
		return e.Uint(expr.Inner)
	case ast.ExprUnary:
		return e.unary(expr)
	case ast.ExprBinary:
		return e.binary(expr)
	}
	return 0, false
}

func (e *Evaluator) namedConst(expr *ast.Expr) (uint64, bool) {
	if e.excluded[expr.Value] {
		return 0, false
	}
	c, ok := e.consts[expr.Value]
	if !ok {
		return 0, false
	}
	if e.visiting[c.Name] {
		if e.reporter != nil {
			diag.ReportError(e.reporter, diag.EvalConstCycle, c.NameSpan,
				"constant definition cycle through `"+e.b.LookupName(c.Name)+"`").Emit()
		}
		return 0, false
	}
	e.visiting[c.Name] = true
	v, ok := e.Uint(c.Value)
	delete(e.visiting, c.Name)
	return v, ok
}

func (e *Evaluator) unary(expr *ast.Expr) (uint64, bool) {
	v, ok := e.Uint(expr.Operand)
	if !ok {
		return 0, false
	}
	switch expr.UnaryOp {
	case ast.ExprUnaryPlus:
		return v, true
	case ast.ExprUnaryMinus:
		// Only -0 stays in the unsigned domain.
		if v == 0 {
			return 0, true
		}
	}
	return 0, false
}

func (e *Evaluator) binary(expr *ast.Expr) (uint64, bool) {
	lhs, ok := e.Uint(expr.Left)
	if !ok {
		return 0, false
	}
	rhs, ok := e.Uint(expr.Right)
	if !ok {
		return 0, false
	}
	switch expr.BinaryOp {
	case ast.ExprBinaryAdd:
		sum, carry := bits.Add64(lhs, rhs, 0)
		if carry != 0 {
			return 0, false
		}
		return sum, true
	case ast.ExprBinarySub:
		if rhs > lhs {
			return 0, false
		}
		return lhs - rhs, true
	case ast.ExprBinaryMul:
		hi, lo := bits.Mul64(lhs, rhs)
		if hi != 0 {
			return 0, false
		}
		return lo, true
	case ast.ExprBinaryDiv:
		if rhs == 0 {
			return 0, false
		}
		return lhs / rhs, true
	case ast.ExprBinaryMod:
		if rhs == 0 {
			return 0, false
		}
		return lhs % rhs, true
	}
	return 0, false
}

// parseUintLiteral parses decimal, 0x/0o/0b literals with '_' separators.
func parseUintLiteral(text string) (uint64, bool) {
	text = strings.ReplaceAll(text, "_", "")
	if text == "" {
		return 0, false
	}
	base := 10
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			base = 16
			text = text[2:]
		case 'o', 'O':
			base = 8
			text = text[2:]
		case 'b', 'B':
			base = 2
			text = text[2:]
		}
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
