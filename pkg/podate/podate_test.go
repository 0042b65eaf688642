package podate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("2019-05-05 10:44-0300")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2019, 5, 5, 13, 44, 0, 0, time.UTC)))
	assert.Equal(t, "2019-05-05 10:44-0300", Format(got))

	got, err = Parse(" 2020-01-02 ")
	require.NoError(t, err)
	assert.Equal(t, 2020, got.Year())
}

func TestParseTemplateAndEmpty(t *testing.T) {
	for _, v := range []string{"", "YEAR-MO-DA HO:MI+ZONE"} {
		got, err := Parse(v)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	}
	assert.Equal(t, "", Format(time.Time{}))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("last tuesday")
	assert.Error(t, err)
}
