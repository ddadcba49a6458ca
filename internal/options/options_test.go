package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value   int
	name    string
	enabled bool
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg,
			NoError(func(c *testConfig) { c.name = "first" }),
			NoError(func(c *testConfig) { c.enabled = true }),
			NoError(func(c *testConfig) { c.name = "second" }),
		)
		require.NoError(t, err)
		require.Equal(t, "second", cfg.name)
		require.True(t, cfg.enabled)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		boom := errors.New("boom")

		err := Apply(cfg,
			NoError(func(c *testConfig) { c.value = 1 }),
			New(func(c *testConfig) error { return boom }),
			NoError(func(c *testConfig) { c.value = 2 }),
		)
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, cfg.value, "options after the failing one must not run")
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, NoError(func(c *testConfig) { c.value = 7 })))
		require.Equal(t, 7, cfg.value)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, testConfig{}, *cfg)
	})
}
