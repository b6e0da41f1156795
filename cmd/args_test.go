package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/intervals/internal/domain"
)

func TestEnvName(t *testing.T) {
	assert.Equal(t, "INTERVALS_KIND", envName("kind"))
	assert.Equal(t, "INTERVALS_LOG_LEVEL", envName("log-level"))
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("INTERVALS_FORMAT", "json")
	assert.Equal(t, "json", envDefault("format", formatText))

	t.Setenv("INTERVALS_FORMAT", "")
	assert.Equal(t, formatText, envDefault("format", formatText))
}

func TestSplitKind(t *testing.T) {
	o := &options{kind: "long"}

	k, rest, err := o.splitKind("short:[1,5]")
	require.NoError(t, err)
	assert.Equal(t, domain.KindShort, k)
	assert.Equal(t, "[1,5]", rest)

	k, rest, err = o.splitKind(" (0,5] ")
	require.NoError(t, err)
	assert.Equal(t, domain.KindLong, k)
	assert.Equal(t, "(0,5]", rest)

	_, _, err = o.splitKind("quad:[1,2]")
	assert.ErrorIs(t, err, domain.ErrUnsupportedDomain)
}

func TestSpanAndPoint(t *testing.T) {
	o := &options{kind: "int"}

	s, err := o.span("(0,5]")
	require.NoError(t, err)
	assert.Equal(t, domain.KindInt, s.Kind())
	assert.Equal(t, "[1,5]", s.UniqueIdentifier())

	_, err = o.span("[5,1]")
	assert.ErrorIs(t, err, domain.ErrIllegalInterval)

	p, err := o.point("double:2.5")
	require.NoError(t, err)
	assert.Equal(t, domain.Of(2.5), p)

	_, err = o.point("x")
	assert.Error(t, err)
}
