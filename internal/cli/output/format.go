package output

import (
	"fmt"
	"io"
	"strings"
)

// FormatHeader renders a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue renders a "Key: value" line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", key, value)
}

func writeMarkdownTable(w io.Writer, headers []string, rows [][]string) {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | "))

	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
}

// FormatOptionalInt renders a nullable number, "-" when absent.
func FormatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// FormatOptionalString renders a nullable string, "-" when absent.
func FormatOptionalString(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// FormatBool renders a boolean as yes/no.
func FormatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
