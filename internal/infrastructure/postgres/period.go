package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// periodClause arma " WHERE col >= $1 AND col <= $2" según los extremos presentes del período.
func periodClause(column string, period repository.Period) (string, []any) {
	var conds []string
	var args []any
	if period.From != nil {
		args = append(args, *period.From)
		conds = append(conds, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if period.To != nil {
		args = append(args, *period.To)
		conds = append(conds, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
