package constants

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a .env file into the process environment when one exists.
// Variables already set win over the file.
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func GetOutDir() string {
	return getEnv("CHANGES_OUT_DIR", "./out")
}

func GetPort() string {
	return getEnv("CHANGES_PORT", "8080")
}

func GetLogLevel() string {
	return getEnv("CHANGES_LOG_LEVEL", "info")
}

func GetBPM() int {
	return getEnvInt("CHANGES_BPM", DefaultBPM)
}

func GetDebounceMillis() int {
	return getEnvInt("CHANGES_DEBOUNCE_MS", 300)
}

func GetCorsOrigins() []string {
	raw := getEnv("CHANGES_CORS_ORIGINS", "*")
	var res []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

const DefaultBPM = 120

// MIDI rendering defaults
const (
	TicksPerQuarter = 960
	DefaultVelocity = 80
	DefaultChannel  = 0
)
