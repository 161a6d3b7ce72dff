package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machikoro/internal/config"
	"machikoro/internal/engine"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.MaxPlayers)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.False(t, cfg.Dev)
	assert.Empty(t, cfg.RulesFile)
	assert.Equal(t, 30*time.Second, cfg.LeaveGrace)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEV", "true")
	t.Setenv("MAX_PLAYERS", "3")
	t.Setenv("RULES_FILE", "/tmp/rules.yaml")
	t.Setenv("LEAVE_GRACE", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Dev)
	assert.Equal(t, 3, cfg.MaxPlayers)
	assert.Equal(t, "/tmp/rules.yaml", cfg.RulesFile)
	assert.Equal(t, 5*time.Second, cfg.LeaveGrace)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "PORT", "not-an-int"},
		{"bad grace", "LEAVE_GRACE", "soon"},
		{"too many players", "MAX_PLAYERS", "7"},
		{"too few players", "MIN_PLAYERS", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRulesDefault(t *testing.T) {
	r, err := config.LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultRules(), r)
}

func TestLoadRulesOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := "starting_money: 5\nairport_bonus: 7\nrequire_town_hall: true\nstarting_cards: [wheat_field]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	r, err := config.LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 5, r.StartingMoney)
	assert.Equal(t, 7, r.AirportBonus)
	assert.True(t, r.RequireTownHall)
	assert.Equal(t, []engine.CardID{engine.WheatField}, r.StartingCards)

	def := engine.DefaultRules()
	assert.Equal(t, def.BankTotal, r.BankTotal)
	assert.Equal(t, def.LowTarget, r.LowTarget)
}

func TestLoadRulesErrors(t *testing.T) {
	_, err := config.LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("starting_money: [oops"), 0o644))
	_, err = config.LoadRules(bad)
	assert.Error(t, err)

	neg := filepath.Join(t.TempDir(), "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("establishment_copies: 0\n"), 0o644))
	_, err = config.LoadRules(neg)
	assert.Error(t, err)
}

func TestExampleRulesFileMatchesDefaults(t *testing.T) {
	r, err := config.LoadRules(filepath.Join("..", "..", "rules.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultRules(), r)
}
