package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name: "loads with all vars set",
			envVars: map[string]string{
				"PORT":             "8080",
				"ENV":              "production",
				"DATABASE_URL":     "postgres://localhost/test",
				"FACE_DATA_DIR":    "/var/lib/eduface/faces",
				"VERIFY_THRESHOLD": "55",
				"MOOD_PROVIDER":    "rekognition",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 8080 &&
					c.Environment == "production" &&
					c.DatabaseURL == "postgres://localhost/test" &&
					c.FaceDataDir == "/var/lib/eduface/faces" &&
					c.VerifyThreshold == 55 &&
					c.MoodProvider == "rekognition"
			},
		},
		{
			name: "uses defaults when optional vars missing",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://localhost/test",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 5000 &&
					c.Environment == "development" &&
					c.VerifyThreshold == 40 &&
					c.MoodProvider == "deepface" &&
					c.FaceDataDir == "./face_data"
			},
		},
		{
			name:    "fails when DATABASE_URL missing",
			envVars: map[string]string{},
			wantErr: true,
			check:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("config check failed: %+v", cfg)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{Environment: "development"}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("development environment misreported")
	}

	cfg.Environment = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("production environment misreported")
	}
}
