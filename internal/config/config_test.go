package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SOUK_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".local", "share", "souk", "catalog.db"), cfg.Database.Path)
	require.Equal(t, 1500, cfg.Payment.DelayMS)
	require.Equal(t, 1500*time.Millisecond, cfg.Payment.Delay())
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "amina@example.com", cfg.Demo.Email)
	require.Equal(t, "Kilimani, Nairobi", cfg.Demo.Location)
	require.NotEmpty(t, cfg.Log.Path)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[payment]
delay_ms = 25

[ui]
currency_symbol = "KSh "

[demo]
name = "Test User"
`), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("SOUK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Payment.DelayMS)
	require.Equal(t, "KSh ", cfg.UI.CurrencySymbol)
	require.Equal(t, "Test User", cfg.Demo.Name)
	// untouched keys keep their defaults
	require.Equal(t, "amina@example.com", cfg.Demo.Email)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[payment]\ndelay_ms = 25\n"), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("SOUK_CONFIG", path)
	t.Setenv("SOUK_PAYMENT_DELAY_MS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Payment.DelayMS)
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "souk", "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("SOUK_CONFIG", path)

	in, err := Load()
	require.NoError(t, err)
	in.UI.CurrencySymbol = "€"
	in.Payment.DelayMS = 10
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, "€", out.UI.CurrencySymbol)
	require.Equal(t, 10, out.Payment.DelayMS)
	require.Equal(t, in.Demo.Email, out.Demo.Email)
}

func TestPaymentDelayZeroIsZero(t *testing.T) {
	t.Parallel()
	require.Equal(t, time.Duration(0), PaymentConfig{}.Delay())
}
