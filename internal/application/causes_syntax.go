package application

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
)

const (
	msgMoreIndented    = "Line {linenumber} identified above is more indented than expected.\n"
	msgExpectedIndent  = "Line {linenumber} identified above was expected to begin a new indented block.\n"
	msgUnindentInvalid = "Line {linenumber} identified above is less indented than the preceding one,\n" +
		"and is not aligned vertically with another block of code.\n"

	msgBreakOutsideLoop    = "The Python keyword 'break' can only be used inside a for loop or inside a while loop.\n"
	msgContinueOutsideLoop = "The Python keyword 'continue' can only be used inside a for loop or inside a while loop.\n"
	msgAssignConstant      = "{keyword} is a constant in Python; you cannot assign it a value.\n\n"
	msgAssignKeyword       = "You were trying to assign a value to the Python keyword '{keyword}'.\nThis is not allowed.\n\n"
	msgUnterminatedString  = "You starting writing a string with a single or double quote\n" +
		"but never ended the string with another quote on that line.\n"
)

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

var pythonConstants = map[string]bool{"None": true, "True": true, "False": true, "__debug__": true}

// syntaxLocation matches the " (file.py, line 3)" suffix of SyntaxError values.
var syntaxLocation = regexp.MustCompile(`\s*\(([^()]*), line (\d+)\)$`)

// syntaxMessage splits a SyntaxError value into Python's message and the
// line it points at.
func syntaxMessage(r entities.Report) (string, int) {
	line := r.LastCall.LineNumber
	if r.Origin != nil {
		line = r.Origin.LineNumber
	}
	msg := strings.TrimSpace(r.Value)
	if m := syntaxLocation.FindStringSubmatchIndex(msg); m != nil {
		if n, err := strconv.Atoi(msg[m[4]:m[5]]); err == nil {
			line = n
		}
		msg = msg[:m[0]]
	}
	return msg, line
}

func indentationError(tr output.Translator, r entities.Report) entities.Cause {
	msg, line := syntaxMessage(r)
	var key string
	switch {
	case strings.Contains(msg, "unexpected indent"):
		key = msgMoreIndented
	case strings.Contains(msg, "expected an indented block"):
		key = msgExpectedIndent
	case strings.Contains(msg, "unindent does not match"):
		key = msgUnindentInvalid
	default:
		return noInformation(tr)
	}
	return entities.Cause{Text: tr.T(key, map[string]any{"linenumber": line})}
}

// messageAnalyzer returns the explanation of a SyntaxError message it
// recognizes, or "".
type messageAnalyzer func(tr output.Translator, msg, line string) string

var messageAnalyzers = []messageAnalyzer{
	assignToKeyword,
	breakOutsideLoop,
	continueOutsideLoop,
	unterminatedString,
}

func syntaxError(tr output.Translator, r entities.Report) entities.Cause {
	msg, _ := syntaxMessage(r)
	for _, analyze := range messageAnalyzers {
		if text := analyze(tr, msg, r.BadLine); text != "" {
			return entities.Cause{Text: text}
		}
	}
	return noInformation(tr)
}

func assignToKeyword(tr output.Translator, msg, line string) string {
	switch msg {
	case "can't assign to keyword", "assignment to keyword", "cannot assign to keyword",
		"cannot assign to None", "cannot assign to True", "cannot assign to False",
		"cannot assign to __debug__":
	default:
		return ""
	}

	word := ""
	for _, w := range strings.FieldsFunc(line, notIdentifier) {
		if pythonKeywords[w] || w == "__debug__" {
			word = w
			break
		}
	}
	if word == "" {
		// Without the source line, newer messages still name the constant.
		word = strings.TrimPrefix(msg, "cannot assign to ")
		if !pythonConstants[word] {
			return ""
		}
	}

	if pythonConstants[word] {
		return tr.T(msgAssignConstant, map[string]any{"keyword": word})
	}
	return tr.T(msgAssignKeyword, map[string]any{"keyword": word})
}

func breakOutsideLoop(tr output.Translator, msg, _ string) string {
	if strings.Contains(msg, "'break' outside loop") {
		return tr.Translate(msgBreakOutsideLoop)
	}
	return ""
}

func continueOutsideLoop(tr output.Translator, msg, _ string) string {
	if strings.Contains(msg, "'continue' not properly in loop") || strings.Contains(msg, "'continue' outside loop") {
		return tr.Translate(msgContinueOutsideLoop)
	}
	return ""
}

func unterminatedString(tr output.Translator, msg, _ string) string {
	if strings.Contains(msg, "EOL while scanning string literal") || strings.Contains(msg, "unterminated string literal") {
		return tr.Translate(msgUnterminatedString)
	}
	return ""
}

func notIdentifier(r rune) bool {
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
