package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:  HTTPConfig{Port: 8080},
		Store: StoreConfig{Endpoint: "http://localhost:3030/gunung/query", TimeoutSec: 10},
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("read timeout default: got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("write timeout default: got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("shutdown timeout default: got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Store.TimeoutSec != 10 {
		t.Errorf("store timeout default: got %d", cfg.Store.TimeoutSec)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{ReadTimeoutSec: 30}}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("explicit timeout overwritten: got %d", cfg.HTTP.ReadTimeoutSec)
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d must be rejected", port)
		}
	}
}

func TestValidate_MissingEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Endpoint = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty endpoint must be rejected")
	}
}

func TestValidate_NonHTTPEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Endpoint = "ftp://localhost:3030"
	if err := cfg.Validate(); err == nil {
		t.Error("non-http endpoint must be rejected")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PUNCAK_TEST_ENDPOINT", "http://fuseki:3030/gunung/query")

	out := string(expandEnvVars([]byte("endpoint: ${PUNCAK_TEST_ENDPOINT}")))
	if !strings.Contains(out, "http://fuseki:3030/gunung/query") {
		t.Errorf("variable not expanded: %q", out)
	}
}

func TestExpandEnvVars_Default(t *testing.T) {
	out := string(expandEnvVars([]byte("endpoint: ${PUNCAK_UNSET_VAR:-http://localhost:3030}")))
	if !strings.Contains(out, "http://localhost:3030") {
		t.Errorf("default not applied: %q", out)
	}
}

func TestExpandEnvVars_UnsetNoDefault(t *testing.T) {
	out := string(expandEnvVars([]byte("key: ${PUNCAK_UNSET_VAR}")))
	if out != "key: " {
		t.Errorf("unset variable must expand to empty: %q", out)
	}
}

func TestGetEnv_Default(t *testing.T) {
	t.Setenv("ENV", "")
	if env := GetEnv(); env != "local" {
		t.Errorf("default env: got %q", env)
	}
}

func TestGetEnv_Explicit(t *testing.T) {
	t.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("env: got %q", env)
	}
}
