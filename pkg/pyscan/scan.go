package pyscan

import (
	"regexp"
	"strconv"
	"strings"
)

// Statement shapes are matched head-first with a regexp, then the argument
// span is taken by balanced-paren scanning so nested calls and string
// literals containing parentheses survive intact.
var (
	constructionHead = regexp.MustCompile(`^(?:([A-Za-z_][A-Za-z0-9_]*)\s*=\s*)?(?:[A-Za-z_][A-Za-z0-9_]*\.)?([A-Z][A-Za-z0-9_]*)\(`)
	methodCallHead   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\.([a-z_][A-Za-z0-9_]*)\(`)
	chainedCallHead  = regexp.MustCompile(`^\.(pack|grid|place)\(`)
	subscriptStmt    = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[\s*['"]([^'"]+)['"]\s*\]\s*=\s*(.+)$`)
	importStmt       = regexp.MustCompile(`^(?:import\s+\S|from\s+\S+\s+import\b)`)
)

type construction struct {
	name        string // assigned variable, empty for bare calls
	kindName    string // constructor name without module qualifier
	args        string // raw argument text
	chainMethod string // layout method chained onto the constructor, if any
	chainArgs   string
}

// matchConstruction recognizes `name = [mod.]Kind(args)` and bare
// `[mod.]Kind(args)` calls, with an optional chained `.pack(...)` style
// suffix. Anything else trailing the call means the line is not a clean
// construction statement and is rejected.
func matchConstruction(line string) (construction, bool) {
	m := constructionHead.FindStringSubmatch(line)
	if m == nil {
		return construction{}, false
	}
	open := len(m[0]) - 1
	closing := matchParen(line, open)
	if closing < 0 {
		return construction{}, false
	}

	c := construction{
		name:     m[1],
		kindName: m[2],
		args:     line[open+1 : closing],
	}

	rest := strings.TrimSpace(line[closing+1:])
	if rest == "" {
		return c, true
	}

	cm := chainedCallHead.FindStringSubmatch(rest)
	if cm == nil {
		return construction{}, false
	}
	chainOpen := len(cm[0]) - 1
	chainClose := matchParen(rest, chainOpen)
	if chainClose < 0 || strings.TrimSpace(rest[chainClose+1:]) != "" {
		return construction{}, false
	}
	c.chainMethod = cm[1]
	c.chainArgs = rest[chainOpen+1 : chainClose]
	return c, true
}

type methodCall struct {
	receiver string
	method   string
	args     string
}

// matchMethodCall recognizes `name.method(args)` statements.
func matchMethodCall(line string) (methodCall, bool) {
	m := methodCallHead.FindStringSubmatch(line)
	if m == nil {
		return methodCall{}, false
	}
	open := len(m[0]) - 1
	closing := matchParen(line, open)
	if closing < 0 || strings.TrimSpace(line[closing+1:]) != "" {
		return methodCall{}, false
	}
	return methodCall{receiver: m[1], method: m[2], args: line[open+1 : closing]}, true
}

type subscript struct {
	receiver string
	key      string
	value    string
}

// matchSubscript recognizes `name['key'] = value`.
func matchSubscript(line string) (subscript, bool) {
	m := subscriptStmt.FindStringSubmatch(line)
	if m == nil {
		return subscript{}, false
	}
	return subscript{receiver: m[1], key: m[2], value: strings.TrimSpace(m[3])}, true
}

// matchParen returns the index of the parenthesis closing line[open], or -1.
// Quoted spans are skipped; quotes do not nest.
func matchParen(line string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(line); i++ {
		ch := line[i]
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
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isImportLine reports whether a trimmed line is import syntax.
func isImportLine(line string) bool {
	return importStmt.MatchString(line)
}

// atoiStrict parses a trimmed decimal integer.
func atoiStrict(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
