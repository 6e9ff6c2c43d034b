package flags

import (
	"flag"
	"io"
	"testing"

	"github.com/eosfactory/eosf/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestChannels_Set(t *testing.T) {
	c := Channels{}

	t.Run("bad channel", func(t *testing.T) {
		require.Error(t, c.Set("TRACE,NOISE"))
		require.False(t, c.IsSet)
	})

	t.Run("positive", func(t *testing.T) {
		require.NoError(t, c.Set("trace,OUT_INFO"))
		require.True(t, c.IsSet)
		require.Equal(t, []logger.Channel{logger.Trace, logger.OutInfo}, c.Value)
		require.Equal(t, "TRACE,OUT_INFO", c.String())
	})

	t.Run("empty", func(t *testing.T) {
		require.NoError(t, c.Set(""))
		require.True(t, c.IsSet)
		require.NotNil(t, c.Value)
		require.Empty(t, c.Value)
	})
}

func TestChannels_FlagSet(t *testing.T) {
	c := new(Channels)
	set := flag.NewFlagSet("flagSet", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.Var(c, "verbosity", "")

	require.NoError(t, set.Parse([]string{"--verbosity", "DEBUG,ERROR"}))
	require.Equal(t, []logger.Channel{logger.Debug, logger.Error}, c.Value)

	require.Error(t, set.Parse([]string{"--verbosity", "LOUD"}))
	require.Equal(t, "", (*Channels)(nil).String())
}
