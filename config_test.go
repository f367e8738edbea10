package sigslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigslot"
	"github.com/dmitrymomot/sigslot/core/config"
)

func TestConfig_Policy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    sigslot.Policy
		wantErr bool
	}{
		{name: "empty", value: "", want: sigslot.PolicyLocal},
		{name: "default", value: "default", want: sigslot.PolicyLocal},
		{name: "none", value: "none", want: sigslot.PolicyNone},
		{name: "global alias", value: "multi_threaded_global", want: sigslot.PolicyGlobal},
		{name: "invalid", value: "bogus", want: sigslot.PolicyLocal, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sigslot.Config{DefaultPolicy: tt.value}.Policy()
			if tt.wantErr {
				assert.ErrorIs(t, err, sigslot.ErrInvalidPolicy)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := sigslot.DefaultConfig()
	assert.Equal(t, "local", cfg.DefaultPolicy)
	assert.False(t, cfg.RecoverPanics)
}

func TestLoadConfig(t *testing.T) {
	// Resolve the process default before touching the environment.
	_ = sigslot.DefaultPolicy()
	t.Cleanup(config.Reset)

	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		cfg, err := sigslot.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, sigslot.DefaultConfig(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("SIGSLOT_DEFAULT_POLICY", "global")
		t.Setenv("SIGSLOT_RECOVER_PANICS", "true")

		cfg, err := sigslot.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "global", cfg.DefaultPolicy)
		assert.True(t, cfg.RecoverPanics)

		p, err := cfg.Policy()
		require.NoError(t, err)
		assert.Equal(t, sigslot.PolicyGlobal, p)
	})

	t.Run("malformed bool", func(t *testing.T) {
		config.Reset()
		t.Setenv("SIGSLOT_RECOVER_PANICS", "sometimes")

		cfg, err := sigslot.LoadConfig()
		assert.Error(t, err)
		assert.Equal(t, sigslot.DefaultConfig(), cfg)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies policy and recovery", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		sig, err := sigslot.NewFromConfig[int](sigslot.Config{DefaultPolicy: "none", RecoverPanics: true})
		require.NoError(t, err)
		assert.Equal(t, sigslot.PolicyNone, sig.Policy())

		bad, good := newLight("bad", rec), newLight("good", rec)
		_, _ = sigslot.Connect(sig, bad, func(*light, int) { panic("boom") })
		_, _ = sigslot.Connect(sig, good, (*light).Toggle)

		assert.NotPanics(t, func() { sig.Emit(1) })
		assert.Equal(t, []string{"good:toggle:1"}, rec.list())
		assert.Equal(t, int64(1), sig.Stats().Panics)
	})

	t.Run("options take precedence", func(t *testing.T) {
		t.Parallel()

		sig, err := sigslot.NewFromConfig[int](sigslot.DefaultConfig(), sigslot.WithPolicy(sigslot.PolicyGlobal))
		require.NoError(t, err)
		assert.Equal(t, sigslot.PolicyGlobal, sig.Policy())
	})

	t.Run("invalid policy", func(t *testing.T) {
		t.Parallel()

		sig, err := sigslot.NewFromConfig[int](sigslot.Config{DefaultPolicy: "spin"})
		assert.ErrorIs(t, err, sigslot.ErrInvalidPolicy)
		assert.Nil(t, sig)
	})
}
