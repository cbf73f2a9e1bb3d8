package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders "p0, p1, ..., p<count-1>".
func prefixedStrings(prefix string, count int) string {
	names := make([]string, count)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(names, ", ")
}
