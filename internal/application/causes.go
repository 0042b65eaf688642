package application

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
)

const (
	msgNoInformation = "No information is known about this exception.\n" +
		"Please report this example to\n" +
		"https://github.com/aroberge/friendly-traceback/issues\n"
	msgFileNotFound       = "In your program, the name of the\nfile that cannot be found is `{filename}`.\n"
	msgKeyNotFound        = "In your program, the key that cannot be found is `{key_name!r}`.\n"
	msgUnknownName        = "In your program, the unknown name is `{var_name}`.\n"
	msgDidYouMean         = "Did you mean `{name}`?\n"
	msgSimilarLocal       = "The similar name `{name}` was found in the local scope.\n"
	msgSimilarFound       = "{count} similar name was found:\n"
	msgSimilarFoundPlural = "{count} similar names were found:\n"
	msgInsteadOf          = "Instead of writing `{name}`, perhaps you meant one of the following:\n"
)

// Names scoring below similarCutoff are not offered as suggestions.
const (
	similarCutoff = 0.6
	maxSimilar    = 3
)

// Analyzer explains the likely cause of a report. A Cause with empty Text
// means nothing specific can be said.
type Analyzer func(tr output.Translator, r entities.Report) entities.Cause

// CauseRegistry maps exception names to analyzers. It is filled before the
// ExplainService is built and only read afterwards.
type CauseRegistry struct {
	analyzers map[string]Analyzer
	order     []string
}

func NewCauseRegistry() *CauseRegistry {
	return &CauseRegistry{analyzers: make(map[string]Analyzer)}
}

// Register adds the analyzer for exception, replacing any previous one.
func (c *CauseRegistry) Register(exception string, a Analyzer) {
	if _, ok := c.analyzers[exception]; !ok {
		c.order = append(c.order, exception)
	}
	c.analyzers[exception] = a
}

func (c *CauseRegistry) Lookup(exception string) (Analyzer, bool) {
	a, ok := c.analyzers[exception]
	return a, ok
}

// Exceptions lists the registered exception names in registration order.
func (c *CauseRegistry) Exceptions() []string {
	return append([]string(nil), c.order...)
}

// DefaultCauses registers every built-in analyzer.
func DefaultCauses() *CauseRegistry {
	c := NewCauseRegistry()
	c.Register("FileNotFoundError", fileNotFound)
	c.Register("ImportError", importError)
	c.Register("IndentationError", indentationError)
	c.Register("KeyError", keyError)
	c.Register("NameError", nameError)
	c.Register("SyntaxError", syntaxError)
	c.Register("UnboundLocalError", unboundLocal)
	return c
}

func noInformation(tr output.Translator) entities.Cause {
	return entities.Cause{Text: tr.Translate(msgNoInformation)}
}

// fileNotFound reads the file name from
// "[Errno 2] No such file or directory: 'name'".
func fileNotFound(tr output.Translator, r entities.Report) entities.Cause {
	parts := strings.Split(r.Value, "'")
	if len(parts) < 3 || parts[1] == "" {
		return noInformation(tr)
	}
	return entities.Cause{Text: tr.T(msgFileNotFound, map[string]any{"filename": parts[1]})}
}

// keyError receives the repr of the missing key, e.g. "'c'" or "3", which
// is already what {key_name!r} must print.
func keyError(tr output.Translator, r entities.Report) entities.Cause {
	key := strings.TrimSpace(r.Value)
	if key == "" {
		return noInformation(tr)
	}
	return entities.Cause{Text: tr.T(msgKeyNotFound, map[string]any{"key_name": pyLiteral(key)})}
}

// commonMisnames are suggested when no name in scope is close enough.
var commonMisnames = map[string]string{
	"length": "len",
	"lenght": "len",
}

var nameNotDefined = regexp.MustCompile(`name '([^']+)' is not defined`)

func nameError(tr output.Translator, r entities.Report) entities.Cause {
	m := nameNotDefined.FindStringSubmatch(r.Value)
	if m == nil {
		return noInformation(tr)
	}
	name := m[1]
	cause := entities.Cause{Text: tr.T(msgUnknownName, map[string]any{"var_name": name})}

	similar := similarWords(name, r.Scope.Locals, r.Scope.Globals, r.Scope.Builtins)
	if alt, ok := commonMisnames[name]; ok && len(similar) == 0 {
		similar = []string{alt}
	}
	switch {
	case len(similar) == 0:
		return cause
	case len(similar) == 1 && contains(r.Scope.Locals, similar[0]):
		cause.Text += "\n" + tr.T(msgSimilarLocal, map[string]any{"name": similar[0]})
	default:
		header := tr.TranslatePlural(msgSimilarFound, msgSimilarFoundPlural, len(similar))
		cause.Text += "\n" + format(tr, header, map[string]any{"count": len(similar)}) +
			"    " + quoteNames(similar) + "\n"
	}
	if len(similar) == 1 {
		cause.Suggest = tr.T(msgDidYouMean, map[string]any{"name": similar[0]})
	}
	return cause
}

// pyLiteral is printed verbatim by both {x} and {x!r}.
type pyLiteral string

func (l pyLiteral) String() string { return string(l) }

// similarWords returns up to maxSimilar candidates close to word, best
// first. Earlier lists win ties.
func similarWords(word string, lists ...[]string) []string {
	type scored struct {
		name  string
		score float64
	}
	seen := map[string]bool{word: true}
	var found []scored
	for _, list := range lists {
		for _, candidate := range list {
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			if score := levenshtein.Match(word, candidate, nil); score >= similarCutoff {
				found = append(found, scored{candidate, score})
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].score > found[j].score })
	if len(found) > maxSimilar {
		found = found[:maxSimilar]
	}
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.name
	}
	return out
}

func quoteNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
