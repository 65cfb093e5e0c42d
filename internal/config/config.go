// Package config resolves runtime configuration once at process start.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config contains runtime configuration derived from environment variables.
type Config struct {
	// StrapiURL is the base URL of the headless CMS, without a trailing slash.
	StrapiURL string
	// StrapiToken is an optional bearer token. Required for seeding.
	StrapiToken string
	// SiteURL is the public URL of this site, used for absolute links.
	SiteURL string
	// Addr is the listen address for the web server.
	Addr string
}

// Load populates Config from environment variables, applying reasonable defaults.
func Load() (Config, error) {
	cfg := Config{
		StrapiURL:   defaultEnv("STRAPI_URL", "http://localhost:1337"),
		StrapiToken: os.Getenv("STRAPI_API_TOKEN"),
		SiteURL:     defaultEnv("SITE_URL", "http://localhost:8080"),
		Addr:        defaultEnv("ADDR", "localhost:8080"),
	}

	for name, raw := range map[string]*string{"STRAPI_URL": &cfg.StrapiURL, "SITE_URL": &cfg.SiteURL} {
		u, err := url.Parse(*raw)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return cfg, fmt.Errorf("%s must be an http(s) URL, got %q", name, *raw)
		}
		*raw = strings.TrimRight(*raw, "/")
	}

	return cfg, nil
}

func defaultEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
