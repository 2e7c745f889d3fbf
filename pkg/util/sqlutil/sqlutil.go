package sqlutil

import (
	"fmt"
	"strings"
)

// Assignment pairs a column with the value bound to it. Generated clause
// text and positional arguments are both derived from one Assignment
// slice in a single pass, so a clause can never reference a parameter
// position holding a different column's value.
type Assignment struct {
	Column string
	Value  interface{}
}

// Assignments builds an ordered assignment list from a projected field
// mapping. order fixes the output order, columns translates field names
// to column names. Fields absent from the mapping are skipped; fields
// without a column translation never reach the statement.
func Assignments(fields map[string]interface{}, order []string, columns map[string]string) []Assignment {
	var assignments []Assignment
	for _, field := range order {
		value, ok := fields[field]
		if !ok {
			continue
		}
		column, ok := columns[field]
		if !ok {
			continue
		}
		assignments = append(assignments, Assignment{Column: column, Value: value})
	}
	return assignments
}

// SetClause renders assignments into an UPDATE SET clause and the
// matching positional argument list, numbering parameters from $1.
func SetClause(assignments []Assignment) (string, []interface{}) {
	clauses := make([]string, 0, len(assignments))
	args := make([]interface{}, 0, len(assignments))
	for _, a := range assignments {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", a.Column, len(args)+1))
		args = append(args, a.Value)
	}
	return strings.Join(clauses, ", "), args
}

// InsertClause renders assignments into the column list, placeholder list
// and argument list for an INSERT statement.
func InsertClause(assignments []Assignment) (string, string, []interface{}) {
	columns := make([]string, 0, len(assignments))
	placeholders := make([]string, 0, len(assignments))
	args := make([]interface{}, 0, len(assignments))
	for _, a := range assignments {
		columns = append(columns, a.Column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)+1))
		args = append(args, a.Value)
	}
	return strings.Join(columns, ", "), strings.Join(placeholders, ", "), args
}
