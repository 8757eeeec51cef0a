package postgres

import (
	"strconv"
	"strings"
)

// whereClause accumulates AND-ed conditions with positional $n placeholders.
type whereClause struct {
	conds []string
	args  []any
}

// add appends cond, replacing its single "?" with the next placeholder.
func (w *whereClause) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), 1))
}

// addIf calls add only when v is not empty.
func (w *whereClause) addIf(cond, v string) {
	if v != "" {
		w.add(cond, v)
	}
}

func (w *whereClause) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next returns the placeholder for an argument appended after the conditions.
func (w *whereClause) next(offset int) string {
	return "$" + strconv.Itoa(len(w.args)+offset)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
