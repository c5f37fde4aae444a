package cli

import (
	"strconv"
	"strings"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/planner"
)

// parseWidths parses the -W flag value: a comma-separated list of
// column widths where "*" leaves the column to the planner, e.g.
// "4,*,8". An empty value means every column is planned.
func parseWidths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "*" {
			widths[i] = planner.Auto
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil || w < 0 {
			return nil, errors.New(errors.ErrCodeInvalidWidths,
				"width %q is not a nonnegative integer or *", part)
		}
		widths[i] = w
	}
	return widths, nil
}
