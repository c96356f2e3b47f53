package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const (
	ModeLive = "live"
	ModeMock = "mock"
)

// Flags are the only command-line options the server accepts.
type Flags struct {
	Host string `help:"Interface to listen on." env:"HOST" default:"127.0.0.1"`
	Port int    `help:"Port to listen on." env:"PORT" default:"5000"`
	Mode string `help:"Backend version to serve (mock replies or live Gemini)." env:"BACKEND_MODE" enum:"live,mock" default:"live"`
}

type Config struct {
	// Server
	Host string
	Port int
	Mode string
	Env  string

	// Gemini AI
	GeminiAPIKey      string
	GeminiModel       string
	GeminiTemperature float32

	// CORS
	AllowedOrigins []string
}

func Load(args []string) (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	var flags Flags
	parser, err := kong.New(&flags,
		kong.Name("server"),
		kong.Description("HTTP backend relaying editor prompts to Gemini."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build flag parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	cfg := &Config{
		Host:              flags.Host,
		Port:              flags.Port,
		Mode:              flags.Mode,
		Env:               getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTemperature: getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.7),
		AllowedOrigins:    getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	return cfg, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsFloatOrDefault(key string, defaultVal float32) float32 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return defaultVal
	}
	return float32(f)
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
