package application

import (
	"regexp"
	"strings"

	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
)

const (
	msgInScope = "The name `{var_name}` exists in the {scope} scope.\n" +
		"Perhaps the statement\n\n" +
		"    {scope} {var_name}\n\n" +
		"should have been included as the first line inside your function.\n"
	msgForgotScope = "Did you forget to add `{scope} {var_name}`?\n"
	msgBothScopes  = "The name `{var_name}` exists in both the global and nonlocal scope.\n" +
		"This can be rather confusing and is not recommended.\n" +
		"Depending on which variable you wanted to refer to, you needed to add either\n\n" +
		"    global {var_name}\n\n" +
		"or\n\n" +
		"    nonlocal {var_name}\n\n" +
		"as the first line inside your function.\n"
	msgForgotEither = "Did you forget to add either `global {var_name}` or \n`nonlocal {var_name}`?\n"

	msgCannotImportFrom = "The object that could not be imported is `{name}`.\n" +
		"The module or package where it was \n" +
		"expected to be found is `{module}`.\n"
	msgCannotImport   = "The object that could not be imported is `{name}`.\n"
	msgCircularHint   = "You have a circular import.\n"
	msgPythonCircular = "Python indicated that you have a circular import.\n" +
		"This can occur if executing the code in module 'A'\n" +
		"results in executing the code in module 'B' where\n" +
		"an attempt to import a name from module 'A' is made\n" +
		"before the execution of the code in module 'A' had been completed.\n"
	msgCircularExplained = "The problem was likely caused by what is known as a 'circular import'.\n" +
		"First, Python imported and started executing the code in file\n" +
		"   '{file}'.\n" +
		"which imports module `{last_module}`.\n" +
		"During this process, the code in another file,\n" +
		"   '{last_file}'\n" +
		"was executed. However in this last file, an attempt was made\n" +
		"to import the original module `{last_module}`\n" +
		"a second time, before Python had completed the first import.\n"
)

var localReferenced = []*regexp.Regexp{
	regexp.MustCompile(`local variable '([^']+)' referenced before assignment`),
	regexp.MustCompile(`cannot access local variable '([^']+)'`),
}

func unboundLocal(tr output.Translator, r entities.Report) entities.Cause {
	var name string
	for _, re := range localReferenced {
		if m := re.FindStringSubmatch(r.Value); m != nil {
			name = m[1]
			break
		}
	}
	if name == "" {
		return noInformation(tr)
	}
	data := map[string]any{"var_name": name}

	scopes := r.Scope.Defines(name)
	global, nonlocal := contains(scopes, "global"), contains(scopes, "nonlocal")
	switch {
	case global && nonlocal:
		return entities.Cause{
			Text:    tr.T(msgBothScopes, data),
			Suggest: tr.T(msgForgotEither, data),
		}
	case global || nonlocal:
		data["scope"] = "global"
		if !global {
			data["scope"] = "nonlocal"
		}
		return entities.Cause{
			Text:    tr.T(msgInScope, data),
			Suggest: tr.T(msgForgotScope, data),
		}
	}

	similar := similarWords(name, r.Scope.Locals)
	if len(similar) == 0 {
		return entities.Cause{}
	}
	cause := entities.Cause{Suggest: tr.T(msgDidYouMean, map[string]any{"name": similar[0]})}
	if len(similar) == 1 {
		cause.Text = tr.T(msgSimilarLocal, map[string]any{"name": similar[0]})
	} else {
		cause.Text = tr.T(msgInsteadOf, map[string]any{"name": name}) + "    " + quoteNames(similar) + "\n"
	}
	return cause
}

var (
	importPartial = regexp.MustCompile(`cannot import name '([^']+)' from partially initialized module '([^']+)'`)
	importFrom    = regexp.MustCompile(`cannot import name '([^']+)' from '([^']+)'`)
	importName    = regexp.MustCompile(`cannot import name '([^']+)'`)
	fromImport    = regexp.MustCompile(`from\s+(\S+)\s+import`)
)

func importError(tr output.Translator, r entities.Report) entities.Cause {
	msg := r.Value
	if m := importPartial.FindStringSubmatch(msg); m != nil {
		// Recent Pythons already mention the circular import.
		return cannotImportFrom(tr, r, m[1], m[2], !strings.Contains(msg, "circular import"))
	}
	if m := importFrom.FindStringSubmatch(msg); m != nil {
		return cannotImportFrom(tr, r, m[1], m[2], true)
	}
	if m := importName.FindStringSubmatch(msg); m != nil {
		if from := fromImport.FindStringSubmatch(r.BadLine); from != nil {
			return cannotImportFrom(tr, r, m[1], from[1], true)
		}
		return entities.Cause{Text: tr.T(msgCannotImport, map[string]any{"name": m[1]})}
	}
	return noInformation(tr)
}

func cannotImportFrom(tr output.Translator, r entities.Report, name, module string, addCircularHint bool) entities.Cause {
	cause := entities.Cause{Text: tr.T(msgCannotImportFrom, map[string]any{"name": name, "module": module})}
	circular := findCircularImport(tr, r.Traceback)
	switch {
	case circular != "":
		if addCircularHint {
			cause.Suggest = tr.Translate(msgCircularHint)
		}
		cause.Text += "\n" + circular
	case !addCircularHint:
		cause.Text += "\n" + tr.Translate(msgPythonCircular)
	}
	return cause
}

var (
	tracebackFile   = regexp.MustCompile(`^File "(.*)", line`)
	tracebackFrom   = regexp.MustCompile(`^from\s+(\S+)\s+import`)
	tracebackImport = regexp.MustCompile(`^import\s+(.*)`)
)

type moduleImport struct {
	file   string
	module string
}

// findCircularImport looks for a module imported twice along the
// traceback, the second time from a file run by the first import.
func findCircularImport(tr output.Translator, traceback string) string {
	var imports []moduleImport
	current := ""
	for _, line := range strings.Split(traceback, "\n") {
		line = strings.TrimSpace(line)
		if m := tracebackFile.FindStringSubmatch(line); m != nil {
			current = baseName(m[1])
			continue
		}
		if m := tracebackFrom.FindStringSubmatch(line); m != nil {
			imports = append(imports, moduleImport{current, m[1]})
			current = ""
			continue
		}
		if m := tracebackImport.FindStringSubmatch(line); m != nil {
			for _, mod := range strings.Split(m[1], ",") {
				if fields := strings.Fields(strings.Trim(mod, "() ")); len(fields) > 0 {
					imports = append(imports, moduleImport{current, fields[0]})
				}
			}
			current = ""
		}
	}
	if len(imports) < 2 {
		return ""
	}

	last := imports[len(imports)-1]
	for _, imp := range imports[:len(imports)-1] {
		if imp.module == last.module {
			return tr.T(msgCircularExplained, map[string]any{
				"file":        imp.file,
				"last_file":   last.file,
				"last_module": last.module,
			})
		}
	}
	return ""
}
