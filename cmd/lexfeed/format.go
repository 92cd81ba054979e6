package main

import (
	"strconv"
	"strings"
)

// formatIDs renders token IDs as a bracketed, comma-separated list,
// e.g. [9906, 11, 1917].
func formatIDs(ids []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatIDLists renders one bracketed list per line's IDs, nested in an
// outer bracket pair.
func formatIDLists(lists [][]int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, ids := range lists {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatIDs(ids))
	}
	sb.WriteByte(']')
	return sb.String()
}

// parseIDs converts string arguments to token IDs, accepting both separate
// arguments and comma- or space-separated groups.
func parseIDs(args []string) ([]int, error) {
	var ids []int
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
