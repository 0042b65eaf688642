package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendly/internal/adapters/cli"
)

func cleanEnv(t *testing.T) {
	for _, k := range []string{"FRIENDLY_LANG", "FRIENDLY_CATALOG_PATH", "FRIENDLY_CATALOG_SOURCE", "FRIENDLY_OVERRIDES", "DATABASE_URL"} {
		t.Setenv(k, "")
	}
}

func TestRunLookup(t *testing.T) {
	cleanEnv(t)
	t.Setenv("FRIENDLY_LANG", "fr")
	t.Setenv("FRIENDLY_CATALOG_SOURCE", "embedded")

	var out, errOut bytes.Buffer
	err := run([]string{"lookup", "Cannot find source code."}, &out, &errOut)
	require.NoError(t, err)
	assert.Equal(t, "Impossible de trouver la source du code.\n", out.String())
}

func TestRunBadConfig(t *testing.T) {
	cleanEnv(t)
	t.Setenv("FRIENDLY_CATALOG_SOURCE", "ftp")

	var out, errOut bytes.Buffer
	err := run([]string{"keys"}, &out, &errOut)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "config: ")
}
