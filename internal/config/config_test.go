package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRAPI_URL", "")
	t.Setenv("STRAPI_API_TOKEN", "")
	t.Setenv("SITE_URL", "")
	t.Setenv("ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StrapiURL != "http://localhost:1337" {
		t.Fatalf("StrapiURL = %q", cfg.StrapiURL)
	}
	if cfg.Addr != "localhost:8080" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("STRAPI_URL", "https://cms.example.com/")
	t.Setenv("SITE_URL", "https://example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StrapiURL != "https://cms.example.com" {
		t.Fatalf("StrapiURL = %q, want trailing slash trimmed", cfg.StrapiURL)
	}
}

func TestLoadRejectsBadScheme(t *testing.T) {
	t.Setenv("STRAPI_URL", "ftp://cms.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}
