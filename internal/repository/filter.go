package repository

import (
	"strconv"
	"strings"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// placeholder возвращает маркер n-го параметра запроса (нумерация с 1)
type placeholder func(n int) string

func dollar(n int) string { return "$" + strconv.Itoa(n) }

func question(int) string { return "?" }

// buildFilter собирает WHERE и LIMIT/OFFSET по фильтру. Пустые поля фильтра не
// ограничивают выборку.
func buildFilter(filter models.IncidentFilter, ph placeholder) (where, paging string, args []any) {
	conds := make([]string, 0, 3)
	add := func(column, value string) {
		args = append(args, value)
		conds = append(conds, column+" = "+ph(len(args)))
	}

	if filter.Type != "" {
		add("type", string(filter.Type))
	}
	if filter.Status != "" {
		add("status", string(filter.Status))
	}
	if filter.Severity != "" {
		add("severity", string(filter.Severity))
	}
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		paging = " LIMIT " + ph(len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			paging += " OFFSET " + ph(len(args))
		}
	}
	return where, paging, args
}
