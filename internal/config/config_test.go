package config_test

import (
	"testing"

	"github.com/katalvlaran/mtv/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(flags)
	require.NoError(t, flags.Parse(nil))

	p, err := config.Load(flags)
	require.NoError(t, err)
	require.Equal(t, 0.05, p.S)
	require.Equal(t, 10, p.Z)
	require.False(t, p.HasK)
	require.False(t, p.HasQ)
	require.Equal(t, ".", p.OutDir)
}

func TestLoadPicksUpExplicitFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"--k=3", "--s=0.1", "--dataset=x.dat"}))

	p, err := config.Load(flags)
	require.NoError(t, err)
	require.True(t, p.HasK)
	require.Equal(t, 3, p.K)
	require.Equal(t, 0.1, p.S)
	require.Equal(t, "x.dat", p.Dataset)
}
