package querybuilder

// Condition is one predicate of a WHERE clause. Conditions are joined with AND.
type Condition interface {
	write(w *writer)
}

type conditionFunc func(w *writer)

func (f conditionFunc) write(w *writer) { f(w) }

// Eq renders "column = $n".
func Eq(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.raw(column, " = ")
		w.bind(value)
	})
}

// IsNull renders "column IS NULL".
func IsNull(column string) Condition {
	return conditionFunc(func(w *writer) {
		w.raw(column, " IS NULL")
	})
}

// Any renders "column = ANY($n)"; value is expected to be a driver array such as pq.Array.
func Any(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.raw(column, " = ANY(")
		w.bind(value)
		w.raw(")")
	})
}

// Expr embeds a raw predicate. Each "?" is replaced by the next positional placeholder.
func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(w *writer) {
		w.expr(expr, args)
	})
}
