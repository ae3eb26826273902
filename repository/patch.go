package repository

import (
	"fmt"
	"strings"
)

// buildUpdateQuery assembles an UPDATE statement from allow-listed
// columns. The id is always $1; column values follow in order. Tables
// with an updated_at column pass touchUpdatedAt to bump it in the same
// statement.
func buildUpdateQuery(table string, cols []string, touchUpdatedAt bool) string {
	assignments := make([]string, 0, len(cols)+1)
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+2))
	}
	if touchUpdatedAt {
		assignments = append(assignments, "updated_at = NOW()")
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(assignments, ", "))
}
