package shibe

import (
	"strconv"
	"strings"
)

// ParseQuery разбирает текст инлайн-запроса вида "[count] [endpoint] ...".
// Никогда не падает: каждое поле независимо откатывается к значению по умолчанию.
func ParseQuery(raw string) Query {
	query := DefaultQuery()

	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return query
	}

	if count, ok := parseCount(parts[0]); ok {
		query.Count = count
		parts = parts[1:]
	}

	if len(parts) > 0 {
		if ep, err := ParseEndpoint(parts[0]); err == nil {
			query.Endpoint = ep
		}
	}

	return query
}

// parseCount принимает только неотрицательные целые, влезающие в int.
// Допускается один ведущий "+".
func parseCount(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
