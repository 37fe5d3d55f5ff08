package repository

import (
	"fmt"
	"strings"
)

// WhereBuilder collects an ordered list of filter predicates and renders them
// as a parameterized WHERE clause. Bound values only ever travel through the
// argument list, never through the SQL text.
type WhereBuilder struct {
	conds []string
	args  []any
}

func NewWhere() *WhereBuilder {
	return &WhereBuilder{}
}

// Compare appends "column op $n" and binds value to the placeholder.
func (b *WhereBuilder) Compare(column, op string, value any) *WhereBuilder {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s %s $%d", column, op, len(b.args)))
	return b
}

// Clause appends a fixed predicate with no bound value, for conditions like
// "a.status IS NULL" that parameterized comparison cannot express.
func (b *WhereBuilder) Clause(expr string) *WhereBuilder {
	b.conds = append(b.conds, expr)
	return b
}

// SQL renders the WHERE clause, or an empty string when no predicate was added.
func (b *WhereBuilder) SQL() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the bound values in placeholder order.
func (b *WhereBuilder) Args() []any {
	return b.args
}
