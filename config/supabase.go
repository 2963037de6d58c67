package config

import (
	"log"

	supa "github.com/supabase-community/supabase-go"
)

func NewSupabaseClient(cfg *Config) *supa.Client {
	// The service role key bypasses row level security; fall back to the anon
	// key so local setups mirror the public form's access level.
	key := cfg.SupabaseServiceKey
	if key == "" {
		key = cfg.SupabaseAnonKey
	}

	client, err := supa.NewClient(cfg.SupabaseURL, key, nil)
	if err != nil {
		log.Fatalf("Failed to create Supabase client: %v", err)
	}
	return client
}
