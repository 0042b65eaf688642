package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendly/internal/infrastructure/i18n"
)

// usedTemplates lists every catalog key the explanation code passes to the
// translator.
func usedTemplates() map[string]bool {
	used := make(map[string]bool)
	for _, key := range []string{
		msgPythonException, msgLikelyCause, msgCauseHeader, msgNoSource,
		msgLastCall, msgOrigin, msgNoGeneric,
		msgNoInformation, msgFileNotFound, msgKeyNotFound, msgUnknownName,
		msgDidYouMean, msgSimilarLocal, msgSimilarFound, msgSimilarFoundPlural, msgInsteadOf,
		msgInScope, msgForgotScope, msgBothScopes, msgForgotEither,
		msgCannotImportFrom, msgCannotImport, msgCircularHint, msgPythonCircular, msgCircularExplained,
		msgMoreIndented, msgExpectedIndent, msgUnindentInvalid,
		msgBreakOutsideLoop, msgContinueOutsideLoop, msgAssignConstant, msgAssignKeyword,
		msgUnterminatedString,
	} {
		used[key] = true
	}
	for _, key := range genericExplanations {
		used[key] = true
	}
	return used
}

func TestEveryCatalogKeyIsUsed(t *testing.T) {
	cat, err := i18n.EmbeddedCatalog("fr")
	require.NoError(t, err)
	require.NotZero(t, cat.Len())

	used := usedTemplates()
	for _, key := range cat.Keys() {
		assert.True(t, used[key], "catalog key is not used by any template: %q", key)
	}
}

// The plural source form and the circular import walkthrough have no entry
// of their own; the latter falls back to English.
func TestEveryTemplateIsTranslated(t *testing.T) {
	cat, err := i18n.EmbeddedCatalog("fr")
	require.NoError(t, err)

	for key := range usedTemplates() {
		if key == msgSimilarFoundPlural || key == msgCircularExplained {
			continue
		}
		_, ok := cat.Lookup(key)
		assert.True(t, ok, "template has no French translation: %q", key)
	}
}
