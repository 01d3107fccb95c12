package parser

import (
	"sort"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// statementCollector implements Visitor (walk.go) to gather, in one pass
// over a statement's AST, the tables it references and the column each
// positional parameter ($1, $2, ...) binds to.
type statementCollector struct {
	tables     []string
	tableSeen  map[string]bool
	params     map[int32]string
	argColumns []string // set directly when a stmt-level shortcut applies (INSERT ... VALUES)
}

func newStatementCollector() *statementCollector {
	return &statementCollector{
		tableSeen: make(map[string]bool),
		params:    make(map[int32]string),
	}
}

func (c *statementCollector) addTable(name string) {
	if name == "" || c.tableSeen[name] {
		return
	}
	c.tableSeen[name] = true
	c.tables = append(c.tables, name)
}

// orderedParamColumns returns the columns bound by $1, $2, ... in parameter
// order. Gaps (a parameter with no resolvable column) are skipped rather
// than padded, since pgwire's Bind/Describe path only cares about columns it
// could actually resolve a type hint for.
func (c *statementCollector) orderedParamColumns() []string {
	if len(c.params) == 0 {
		return nil
	}
	nums := make([]int32, 0, len(c.params))
	for n := range c.params {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	cols := make([]string, 0, len(nums))
	for _, n := range nums {
		cols = append(cols, c.params[n])
	}
	return cols
}

func (c *statementCollector) Visit(node *pg_query.Node) (Visitor, error) {
	switch n := node.Node.(type) {
	case *pg_query.Node_RangeVar:
		c.addTable(n.RangeVar.Relname)

	case *pg_query.Node_ResTarget:
		if num, ok := paramRefNumber(n.ResTarget.Val); ok && n.ResTarget.Name != "" {
			col := n.ResTarget.Name
			// "SET tbl.col = $n" parses as name "tbl" with indirection "col".
			if field, ok := lastField(n.ResTarget.Indirection); ok {
				col = field
			}
			c.params[num] = col
		}

	case *pg_query.Node_BoolExpr:
		// A bare parameter used as a boolean operand ("... OR $3") binds no
		// column; record the "boolean" hint db.LookupTypeInfo understands.
		for _, arg := range n.BoolExpr.Args {
			if num, ok := paramRefNumber(arg); ok {
				if _, seen := c.params[num]; !seen {
					c.params[num] = "boolean"
				}
			}
		}

	case *pg_query.Node_AExpr:
		c.collectAExpr(n.AExpr)
	}
	return c, nil
}

func (c *statementCollector) VisitEnd(node *pg_query.Node) error { return nil }

// collectAExpr matches a comparison like "col <op> $n" (or "$n <op> col") and
// records n -> col. When the non-parameter side is itself an expression
// (e.g. "a + b + col > $1"), columnRefName walks down to the operand nearest
// the parameter, which is what PostgreSQL clients typically care about for
// type inference.
func (c *statementCollector) collectAExpr(expr *pg_query.A_Expr) {
	if expr == nil {
		return
	}
	if num, ok := paramRefNumber(expr.Rexpr); ok {
		if col, ok := columnRefName(expr.Lexpr); ok {
			c.params[num] = col
		}
		return
	}
	if num, ok := paramRefNumber(expr.Lexpr); ok {
		if col, ok := columnRefName(expr.Rexpr); ok {
			c.params[num] = col
		}
	}
}

func paramRefNumber(node *pg_query.Node) (int32, bool) {
	if node == nil {
		return 0, false
	}
	pr, ok := node.Node.(*pg_query.Node_ParamRef)
	if !ok {
		return 0, false
	}
	return pr.ParamRef.Number, true
}

// columnRefName finds the column name "closest" to a parameter reference:
// a direct column reference, or the rightmost leaf of a nested arithmetic
// expression (mirroring how a left-associative "a + b + c" parses, with c as
// the final operand).
func columnRefName(node *pg_query.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	switch n := node.Node.(type) {
	case *pg_query.Node_ColumnRef:
		return lastField(n.ColumnRef.Fields)
	case *pg_query.Node_AExpr:
		if name, ok := columnRefName(n.AExpr.Rexpr); ok {
			return name, true
		}
		return columnRefName(n.AExpr.Lexpr)
	case *pg_query.Node_TypeCast:
		return columnRefName(n.TypeCast.Arg)
	default:
		return "", false
	}
}

func lastField(fields []*pg_query.Node) (string, bool) {
	if len(fields) == 0 {
		return "", false
	}
	last := fields[len(fields)-1]
	s, ok := last.Node.(*pg_query.Node_String_)
	if !ok {
		return "", false
	}
	return s.String_.Sval, true
}
