package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Addr != ":8095" {
		t.Errorf("unexpected default addr: %q", cfg.Server.Addr)
	}
	if cfg.Labels.DefaultLanguage != "en" {
		t.Errorf("unexpected default language: %q", cfg.Labels.DefaultLanguage)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"missing default language", func(c *Config) { c.Labels.DefaultLanguage = "" }, true},
		{"nats url without subject", func(c *Config) {
			c.NATS.URL = "nats://localhost:4222"
			c.NATS.Subject = ""
		}, true},
		{"nats url with subject", func(c *Config) {
			c.NATS.URL = "nats://localhost:4222"
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMergePrecedence(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Server: ServerConfig{Addr: ":9000"},
		Labels: LabelsConfig{DefaultLanguage: "de"},
	})

	if base.Server.Addr != ":9000" {
		t.Errorf("merge did not take addr: %q", base.Server.Addr)
	}
	if base.Server.APIPrefix != "api/labels" {
		t.Errorf("merge clobbered unset field: %q", base.Server.APIPrefix)
	}
	if base.Labels.DefaultLanguage != "de" {
		t.Errorf("merge did not take language: %q", base.Labels.DefaultLanguage)
	}
	if base.NATS.Subject != "catalog.label.resolve" {
		t.Errorf("merge clobbered NATS subject: %q", base.NATS.Subject)
	}
}

func TestMergeNil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(nil)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config invalid after nil merge: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontolabel.yaml")
	content := `
server:
  addr: ":7070"
labels:
  default_language: fr
  overrides_path: /etc/ontolabel/overrides.yaml
catalog:
  triples_path: /var/lib/ontolabel/triples.yaml
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Labels.DefaultLanguage != "fr" {
		t.Errorf("language = %q", cfg.Labels.DefaultLanguage)
	}
	if cfg.Labels.OverridesPath != "/etc/ontolabel/overrides.yaml" {
		t.Errorf("overrides path = %q", cfg.Labels.OverridesPath)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Server.APIPrefix != "api/labels" {
		t.Errorf("api prefix = %q", cfg.Server.APIPrefix)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Addr = ":6060"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Server.Addr != ":6060" {
		t.Errorf("round trip lost addr: %q", loaded.Server.Addr)
	}
}
