package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"5000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"eduface"`

	// Face pipeline
	FaceDataDir      string  `envconfig:"FACE_DATA_DIR" default:"./face_data"`
	CascadePath      string  `envconfig:"FACE_CASCADE_PATH" default:"./assets/facefinder"`
	VerifyThreshold  float64 `envconfig:"VERIFY_THRESHOLD" default:"40"`
	MaxImagesPerUser int     `envconfig:"MAX_IMAGES_PER_USER" default:"10"`

	// Mood provider
	MoodProvider string `envconfig:"MOOD_PROVIDER" default:"deepface"`
	DeepFaceURL  string `envconfig:"DEEPFACE_URL" default:"http://localhost:5005"`
	AWSRegion    string `envconfig:"AWS_REGION" default:"us-east-1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
