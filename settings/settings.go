// Package settings loads the backend configuration from the environment.
package settings

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings contains the configuration of the backend
type Settings struct {
	Port                   string
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string
	OpenAIAPIKey           string
	AllowedIPs             []string
	DataDir                string
}

// Load reads the settings from the environment, loading a .env file first
// when one is present. SUPABASE_URL is optional: without it the backend
// falls back to the local sqlite store.
func Load() *Settings {
	_ = godotenv.Load()

	s := &Settings{
		Port:                   get("PORT", "8080"),
		SupabaseURL:            strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseJWTSecret:      os.Getenv("SUPABASE_JWT_SECRET"),
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		DataDir:                get("DATA_DIR", "./data"),
	}

	if ips := os.Getenv("ALLOWED_IPS"); ips != "" {
		for _, ip := range strings.Split(ips, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				s.AllowedIPs = append(s.AllowedIPs, ip)
			}
		}
	}

	if s.SupabaseURL != "" {
		mustHave("SUPABASE_SERVICE_ROLE_KEY", s.SupabaseServiceRoleKey)
		mustHave("SUPABASE_JWT_SECRET", s.SupabaseJWTSecret)
	}

	return s
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustHave(k, v string) {
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
}
