package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// readerConfig mimics the parse-configuration structs built on this package.
type readerConfig struct {
	Delimiter rune
	Header    int
	Strict    bool
}

func (c *readerConfig) setHeader(lines int) error {
	if lines < 0 {
		return errors.New("header lines cannot be negative")
	}
	c.Header = lines

	return nil
}

func TestOption_New(t *testing.T) {
	cfg := &readerConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *readerConfig) error {
			return c.setHeader(2)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.Header)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *readerConfig) error {
			return c.setHeader(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &readerConfig{}

	opt := NoError(func(c *readerConfig) {
		c.Delimiter = ','
	})

	err := opt.apply(cfg)
	require.NoError(t, err)
	require.Equal(t, ',', cfg.Delimiter)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &readerConfig{}

		err := Apply(cfg,
			NoError(func(c *readerConfig) { c.Delimiter = '\t' }),
			NoError(func(c *readerConfig) { c.Strict = true }),
			NoError(func(c *readerConfig) { c.Delimiter = ',' }), // later option wins
		)
		require.NoError(t, err)
		require.Equal(t, ',', cfg.Delimiter)
		require.True(t, cfg.Strict)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &readerConfig{}

		err := Apply(cfg,
			New(func(c *readerConfig) error { return c.setHeader(-1) }),
			NoError(func(c *readerConfig) { c.Strict = true }),
		)
		require.Error(t, err)
		require.False(t, cfg.Strict)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &readerConfig{Header: 1}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 1, cfg.Header)
	})
}
