package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"catalog": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "CATALOG_BASEURL", want: "catalog.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Session.CookieName != defaultSessionCookie {
		t.Fatalf("CookieName = %q, want %q", cfg.Session.CookieName, defaultSessionCookie)
	}
	if cfg.Session.TTL != defaultSessionTTL {
		t.Fatalf("TTL = %v, want %v", cfg.Session.TTL, defaultSessionTTL)
	}
	if cfg.Catalog.Provider != "local" {
		t.Fatalf("Catalog.Provider = %q, want local", cfg.Catalog.Provider)
	}
	if cfg.Catalog.ListLimit != defaultCatalogListLimit {
		t.Fatalf("Catalog.ListLimit = %d, want %d", cfg.Catalog.ListLimit, defaultCatalogListLimit)
	}
	if cfg.PasswordStrength.MinLength != 8 || cfg.PasswordStrength.MaxLength != 72 {
		t.Fatalf("PasswordStrength = %+v, want 8..72", *cfg.PasswordStrength)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{CookieName: "sid", TTL: 2 * defaultSessionTTL},
		Catalog: &CatalogConfig{Provider: "remote", BaseURL: "https://dummyjson.com", ListLimit: 30},
	}
	applyDefaults(cfg)

	if cfg.Session.CookieName != "sid" {
		t.Fatalf("CookieName = %q, want sid", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 2*defaultSessionTTL {
		t.Fatalf("TTL = %v, want %v", cfg.Session.TTL, 2*defaultSessionTTL)
	}
	if cfg.Catalog.Provider != "remote" || cfg.Catalog.ListLimit != 30 {
		t.Fatalf("Catalog = %+v, want remote/30", *cfg.Catalog)
	}
	if cfg.Catalog.Timeout != defaultCatalogTimeout {
		t.Fatalf("Catalog.Timeout = %v, want %v", cfg.Catalog.Timeout, defaultCatalogTimeout)
	}
}
