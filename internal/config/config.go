package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"vocabpopup/internal/domain"
)

const (
	defaultHotkey    = "ctrl+shift+v"
	defaultVocabFile = "vocabulary.txt"
)

// Config holds all application configuration
type Config struct {
	Hotkey    domain.Chord
	VocabPath string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	chord, err := ParseChord(getEnv("POPUP_HOTKEY", defaultHotkey))
	if err != nil {
		return nil, fmt.Errorf("POPUP_HOTKEY: %w", err)
	}

	return &Config{
		Hotkey:    chord,
		VocabPath: vocabPath(getEnv("VOCAB_FILE", defaultVocabFile)),
	}, nil
}

// vocabPath resolves the vocabulary file name against the directory of the
// running executable. No alternate search path is consulted.
func vocabPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// ParseChord parses a chord like "ctrl+shift+v" into its modifiers and
// key. At least one modifier and exactly one letter or digit key are
// required.
func ParseChord(s string) (domain.Chord, error) {
	var chord domain.Chord

	for _, part := range strings.Split(strings.ToLower(s), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl", "control":
			chord.Mods |= domain.ModCtrl
		case "shift":
			chord.Mods |= domain.ModShift
		case "alt":
			chord.Mods |= domain.ModAlt
		case "win", "super", "cmd":
			chord.Mods |= domain.ModSuper
		default:
			if len(part) != 1 || !isKeyChar(part[0]) {
				return domain.Chord{}, fmt.Errorf("unknown token %q in %q", part, s)
			}
			if chord.Key != 0 {
				return domain.Chord{}, fmt.Errorf("more than one key in %q", s)
			}
			chord.Key = keyByte(part[0])
		}
	}

	if chord.Key == 0 {
		return domain.Chord{}, fmt.Errorf("no key in %q", s)
	}
	if chord.Mods == 0 {
		return domain.Chord{}, fmt.Errorf("no modifier in %q", s)
	}
	return chord, nil
}

func isKeyChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// keyByte uppercases letters; digits pass through
func keyByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
