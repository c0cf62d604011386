package lox

import (
	"errors"
	"fmt"
	"strings"
)

// FormatErrorWithSource renders err followed by the source line it
// points at, when err is one of the pipeline error types and the line is
// in range. Any other error renders as err.Error() alone.
func FormatErrorWithSource(err error, source string) string {
	line := errorLine(err)
	if line <= 0 {
		return err.Error()
	}
	frame := formatSourceLine(source, line)
	if frame == "" {
		return err.Error()
	}
	return err.Error() + "\n" + frame
}

func errorLine(err error) int {
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return scanErr.Line
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Line
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Token.Line
	}
	return 0
}

func formatSourceLine(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	return fmt.Sprintf("  --> line %d\n %d | %s", line, line, lines[line-1])
}
