package pyscan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-tkview/tkview/pkg/widget"
)

var (
	intLit     = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatLit   = regexp.MustCompile(`^[+-]?(?:[0-9]+\.[0-9]*|\.[0-9]+)$`)
	keywordArg = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*([^=].*)$`)
)

// splitArgs splits an argument list on commas that sit outside quotes and at
// parenthesis depth zero, so nested calls and strings containing commas stay
// in one piece. Quotes are single or double and do not nest.
func splitArgs(args string) []string {
	if strings.TrimSpace(args) == "" {
		return nil
	}

	var parts []string
	var quote byte
	depth := 0
	start := 0
	for i := 0; i < len(args); i++ {
		ch := args[i]
		if quote != 0 {
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(args[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(args[start:]))
	return parts
}

// parseArgs splits an argument list into positional arguments (raw text) and
// keyword arguments mapped to typed values.
func parseArgs(args string) ([]string, *widget.Props) {
	props := widget.NewProps()
	var positional []string
	for _, part := range splitArgs(args) {
		if part == "" {
			continue
		}
		if m := keywordArg.FindStringSubmatch(part); m != nil {
			props.Set(m[1], parseLiteral(strings.TrimSpace(m[2])))
			continue
		}
		positional = append(positional, part)
	}
	return positional, props
}

// parseLiteral maps a trimmed source token to a typed value. The type is
// decided here, once; later stages never reinterpret it. Tokens that are not
// literals (identifiers, nested calls, tuples) stay as symbolic text.
func parseLiteral(token string) widget.Value {
	switch token {
	case "True":
		return widget.Bool(true)
	case "False":
		return widget.Bool(false)
	case "None":
		return widget.Null()
	}
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			// Outer quotes stripped, no escape processing.
			return widget.Str(token[1 : len(token)-1])
		}
	}
	if intLit.MatchString(token) {
		n, _ := atoiStrict(token)
		return widget.Int(n)
	}
	if floatLit.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return widget.Float(f)
		}
	}
	return widget.Symbol(token)
}
