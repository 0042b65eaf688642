package application

import (
	"log"
	"strings"

	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
	"friendly/pkg/pyformat"
)

const (
	msgPythonException = "\n    Python exception: \n        {name}: {value}\n\n{explanation}"
	msgLikelyCause     = "    Likely cause:\n{cause}"
	msgCauseHeader     = "Likely cause based on the information given by Python:"
	msgNoSource        = "Cannot find source code."
	msgLastCall        = "\n    Execution stopped on line {linenumber} of file '{filename}'.\n\n{source}\n"
	msgOrigin          = "\n    Exception raised on line {linenumber} of file '{filename}'.\n\n{source}\n"
	msgNoGeneric       = "No information is available about this exception.\n"
)

var genericExplanations = map[string]string{
	"NameError": "A NameError exception indicates that a variable or\n" +
		"function name is not known to Python.\n" +
		"Most often, this is because there is a spelling mistake.\n" +
		"However, sometimes it is because the name is used\n" +
		"before being defined or given a value.\n",
	"IndentationError": "An IndentationError occurs when a given line of code is\n" +
		"not indented (aligned vertically with other lines) as expected.\n",
	"TabError": "A TabError indicates that you have used both spaces\n" +
		"and tab characters to indent your code.\n" +
		"This is not allowed in Python.\n" +
		"Indenting your code means to have block of codes aligned vertically\n" +
		"by inserting either spaces or tab characters at the beginning of lines.\n" +
		"Python's recommendation is to always use spaces to indent your code.\n",
	"SyntaxError": "A SyntaxError occurs when Python cannot understand your code.\n",
	"UnboundLocalError": "In Python, variables that are used inside a function are known as \n" +
		"local variables. Before they are used, they must be assigned a value.\n" +
		"A variable that is used before it is assigned a value is assumed to\n" +
		"be defined outside that function; it is known as a 'global'\n" +
		"(or sometimes 'nonlocal') variable. You cannot assign a value to such\n" +
		"a global variable inside a function without first indicating to\n" +
		"Python that this is a global variable, otherwise you will see\n" +
		"an UnboundLocalError.\n",
	"KeyError": "A KeyError is raised when a value is not found as a\n" +
		"key in a Python dict.\n",
	"FileNotFoundError": "A FileNotFoundError exception indicates that you\n" +
		"are trying to open a file that cannot be found by Python.\n" +
		"This could be because you misspelled the name of the file.\n",
	"ImportError": "An ImportError exception indicates that a certain object could not\n" +
		"be imported from a module or package. Most often, this is\n" +
		"because the name of the object is not spelled correctly.\n",
	"ZeroDivisionError": "A ZeroDivisionError occurs when you are attempting to divide\n" +
		"a value by zero:\n" +
		"    result = my_variable / 0\n" +
		"It can also happen if you calculate the remainder of a division\n" +
		"using the modulo operator '%'\n" +
		"    result = my_variable % 0\n",
}

// ExplainService renders Python exception reports through a Translator.
type ExplainService struct {
	tr     output.Translator
	causes *CauseRegistry
}

// NewExplainService uses DefaultCauses when causes is nil.
func NewExplainService(tr output.Translator, causes *CauseRegistry) *ExplainService {
	if causes == nil {
		causes = DefaultCauses()
	}
	return &ExplainService{tr: tr, causes: causes}
}

// GenericExplanation describes what an exception of the given type means.
func (s *ExplainService) GenericExplanation(exception string) string {
	key, ok := genericExplanations[exception]
	if !ok {
		key = msgNoGeneric
	}
	return s.tr.Translate(key)
}

func (s *ExplainService) PythonException(exception, value string) string {
	return s.tr.T(msgPythonException, map[string]any{
		"name":        exception,
		"value":       value,
		"explanation": s.GenericExplanation(exception),
	})
}

// LikelyCause runs the analyzer registered for the report's exception.
// The zero Cause is returned when none is registered or none applies.
func (s *ExplainService) LikelyCause(report entities.Report) entities.Cause {
	analyze, ok := s.causes.Lookup(report.Exception)
	if !ok {
		return entities.Cause{}
	}
	cause := analyze(s.tr, report)
	if cause.Text == "" {
		return entities.Cause{Suggest: cause.Suggest}
	}
	cause.Header = s.tr.Translate(msgCauseHeader)
	cause.Text = s.tr.T(msgLikelyCause, map[string]any{"cause": cause.Text})
	return cause
}

// SourceInfo renders the location of a frame: the last call made when
// lastCall is set, otherwise the line where the exception was raised.
func (s *ExplainService) SourceInfo(frame entities.Frame, lastCall bool) string {
	source := frame.Source
	if strings.TrimSpace(source) == "" {
		source = s.tr.Translate(msgNoSource)
	}
	key := msgOrigin
	if lastCall {
		key = msgLastCall
	}
	return s.tr.T(key, map[string]any{
		"linenumber": frame.LineNumber,
		"filename":   baseName(frame.Filename),
		"source":     source,
	})
}

// Explain joins the generic explanation, the likely cause and the source
// locations of report.
func (s *ExplainService) Explain(report entities.Report) entities.Explanation {
	parts := []string{s.PythonException(report.Exception, report.Value)}

	cause := s.LikelyCause(report)
	if cause.Text != "" {
		parts = append(parts, cause.Text)
	}

	parts = append(parts, s.SourceInfo(report.LastCall, true))
	if report.Origin != nil {
		parts = append(parts, s.SourceInfo(*report.Origin, false))
	}

	return entities.Explanation{
		Text:    strings.Join(parts, "\n"),
		Suggest: cause.Suggest,
	}
}

// baseName strips the directories of a path written on any platform.
func baseName(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		return filename[i+1:]
	}
	return filename
}

// format fills an already translated template, used for plural forms.
func format(tr output.Translator, tmpl string, data map[string]any) string {
	out, err := pyformat.Format(tmpl, data)
	if err != nil {
		log.Printf("explain: format failed (lang=%s): %v", tr.Language(), err)
	}
	return out
}
