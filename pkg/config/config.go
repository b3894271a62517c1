package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"lyra/pkg/models"
)

const (
	SERVER_PORT        = "8090"
	TEMP_AUDIO_DIR     = "temp_audio"
	PROFILES_FILE_NAME = "profiles.json"
)

func LoadProfiles(filename string) ([]models.Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error to open profile: %w", err)
	}
	defer file.Close()
	var profiles []models.Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&profiles); err != nil {
		return nil, fmt.Errorf("error to decode profiles: %w", err)
	}
	return profiles, nil
}

func GetProfileByName(profiles []models.Config, name string) (*models.Config, error) {
	for _, p := range profiles {
		if p.ProfileName == name {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("profile '%s' not found", name)
}

func DefaultProfile() models.Config {
	return models.Config{
		ProfileName: "default",
		Username:    "friend",
		Language:    "auto",

		ListenerEnabled:   false,
		Hotword:           "lyra",
		WhisperModelPath:  "./models/ggml-base.bin",
		VADThreshold:      0.01,
		VADSilenceTimeout: models.Duration{Duration: 600 * time.Millisecond},
		SilenceRMS:        500,

		TTSEnabled: true,
		TTSEngine:  "gtranslate",

		SentimentEngine: "lexicon",
		LLMModel: models.LLMModel{
			Type:  "ollama",
			Model: "llama3.2",
			URL:   "http://localhost:11434/api/generate",
		},

		SurfaceActionErrors: false,

		DatabaseFile: "./lyra.db",
		LogFile:      "./lyra.log",
		ServerPort:   SERVER_PORT,
	}
}

// Init loads the profile file from the user config dir, falling back to the
// default profile when none exists yet.
func Init(profileName string, debug bool) models.Config {
	profilesPath := filepath.Join(GetUserConfigPath(), PROFILES_FILE_NAME)
	profiles, err := LoadProfiles(profilesPath)
	if err != nil {
		log.Printf("CONFIG: no profiles file (%v), using defaults", err)
		cfg := DefaultProfile()
		cfg.DEBUG = debug
		return cfg
	}
	name := profileName
	if name == "" {
		name = "default"
	}
	cfg, err := GetProfileByName(profiles, name)
	if err != nil {
		log.Printf("CONFIG: %v, using defaults", err)
		def := DefaultProfile()
		def.DEBUG = debug
		return def
	}
	cfg.DEBUG = cfg.DEBUG || debug
	return *cfg
}

func GetUserConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("CONFIG: error getting user config directory: %v", err)
		return "."
	}
	path := filepath.Join(configDir, "lyra")
	if err := os.MkdirAll(path, 0755); err != nil {
		log.Printf("CONFIG: error creating config directory: %v", err)
		return "."
	}
	return path
}

// TempAudioPath returns the directory used for synthesized and captured audio.
func TempAudioPath() string {
	path := filepath.Join(GetUserConfigPath(), TEMP_AUDIO_DIR)
	if err := os.MkdirAll(path, 0755); err != nil {
		log.Printf("CONFIG: error creating temp audio directory: %v", err)
		return os.TempDir()
	}
	return path
}
