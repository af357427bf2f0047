package config

import (
	"testing"

	"github.com/averost/focustick/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Languages) != len(domain.DefaultLanguages) {
		t.Errorf("languages = %v, want the default tag set", cfg.Languages)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should default to enabled")
	}
	if cfg.Storage.DataDir != "~/.focustick" {
		t.Errorf("data dir = %q, want ~/.focustick", cfg.Storage.DataDir)
	}
	if cfg.Theme.ColorTimer == "" {
		t.Error("theme colors should have defaults")
	}
}

func TestConfig_LanguageTags(t *testing.T) {
	t.Run("configured set", func(t *testing.T) {
		cfg := &Config{Languages: []string{"Zig", "", "Haskell"}}
		tags := cfg.LanguageTags()
		want := []domain.Language{"Zig", "Haskell"}
		if len(tags) != len(want) {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
		for i := range want {
			if tags[i] != want[i] {
				t.Errorf("tags[%d] = %v, want %v", i, tags[i], want[i])
			}
		}
	})

	t.Run("empty config falls back to defaults", func(t *testing.T) {
		cfg := &Config{}
		tags := cfg.LanguageTags()
		if len(tags) != len(domain.DefaultLanguages) {
			t.Errorf("tags = %v, want default set", tags)
		}
	})
}
