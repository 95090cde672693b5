package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
	}
}

func TestValidate_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for valid config: %v", err)
	}
}

func TestValidate_SourceURLs(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.Fields = map[string]string{
		"tech": "https://example.com/tech.txt",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for absolute URL: %v", err)
	}

	cfg.Sources.Fields["nature"] = "not-a-url"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for relative source URL")
	}

	expected := `sources.fields.nature must be an absolute URL, got "not-a-url"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_CacheRequiresAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache without addrs")
	}

	cfg.Cache.Addrs = []string{"localhost:6379"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with addrs set: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.Sources.FetchTimeoutSec != 8 {
		t.Errorf("fetch timeout default: got %d, want 8", cfg.Sources.FetchTimeoutSec)
	}
	if cfg.Sources.PoolCap != 5000 {
		t.Errorf("pool cap default: got %d, want 5000", cfg.Sources.PoolCap)
	}
	if cfg.Scoring.BatchSize != 30 {
		t.Errorf("batch size default: got %d, want 30", cfg.Scoring.BatchSize)
	}
	if cfg.Scoring.TimeoutSec != 60 {
		t.Errorf("scoring timeout default: got %d, want 60", cfg.Scoring.TimeoutSec)
	}
	if cfg.Cache.TTLSec != 3600 {
		t.Errorf("cache ttl default: got %d, want 3600", cfg.Cache.TTLSec)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.BatchSize = 10
	cfg.Sources.PoolCap = 100
	cfg.ApplyDefaults()

	if cfg.Scoring.BatchSize != 10 {
		t.Errorf("batch size overridden: got %d, want 10", cfg.Scoring.BatchSize)
	}
	if cfg.Sources.PoolCap != 100 {
		t.Errorf("pool cap overridden: got %d, want 100", cfg.Sources.PoolCap)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("WORDRANK_TEST_KEY", "sk-123")

	in := []byte("api_key: ${WORDRANK_TEST_KEY}\nmodel: ${WORDRANK_TEST_MODEL:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	want := "api_key: sk-123\nmodel: gpt-4o-mini\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
