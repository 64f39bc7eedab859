package querybuilder

import (
	"strconv"
	"strings"
)

// writer accumulates SQL text and its positional arguments ($1, $2, ...).
type writer struct {
	sql  strings.Builder
	args []any
}

func (w *writer) raw(parts ...string) {
	for _, part := range parts {
		w.sql.WriteString(part)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.sql.WriteByte('$')
	w.sql.WriteString(strconv.Itoa(len(w.args)))
}

func (w *writer) expr(expr string, args []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sql.WriteByte(expr[i])
	}
}

func (w *writer) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.raw(" WHERE ")
		} else {
			w.raw(" AND ")
		}
		c.write(w)
	}
}

func (w *writer) list(keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	w.raw(" ", keyword, " ", strings.Join(parts, ", "))
}

func (w *writer) result() (string, []any, error) {
	return w.sql.String(), w.args, nil
}
