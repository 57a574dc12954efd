package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"liveness-probe/types/validators"
)

const (
	CONFIG_FILE = "config/config.yaml"
	DOTENV_FILE = ".env"

	DEFAULT_HTTP_API_HOST = "0.0.0.0"
	DEFAULT_HTTP_API_PORT = 8080
	DEFAULT_LOG_LEVEL     = "info"
)

//go:embed schema.json
var configSchema string

type Config struct {
	Log           LogConfig     `yaml:"log" json:"log"`
	HTTPAPIServer HTTPAPIServer `yaml:"http_api_server" json:"http_api_server"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

type HTTPAPIServer struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: DEFAULT_LOG_LEVEL,
		},
		HTTPAPIServer: HTTPAPIServer{
			Host: DEFAULT_HTTP_API_HOST,
			Port: DEFAULT_HTTP_API_PORT,
		},
	}
}

// NewConfig loads .env into the environment, then the file named by
// CONFIG_FILE (or the default path).
func NewConfig() (Config, error) {
	if err := LoadDotEnv(DOTENV_FILE); err != nil {
		return Config{}, err
	}

	return Load(ConfigPath())
}

// LoadDotEnv sets variables from the dotenv file at path. Variables already
// in the environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func ConfigPath() string {
	if configPath := os.Getenv("CONFIG_FILE"); configPath != "" {
		return configPath
	}
	return CONFIG_FILE
}

// Load builds a Config from defaults, the YAML file at path and the
// environment, in that order. A missing file is tolerated only for the
// default path.
func Load(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && path == CONFIG_FILE:
			// defaults only
		case err != nil:
			return Config{}, fmt.Errorf("open config %s: %w", path, err)
		default:
			defer file.Close()

			d := yaml.NewDecoder(file)
			if err := d.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	if host, ok := os.LookupEnv("HTTP_API_HOST"); ok {
		c.HTTPAPIServer.Host = host
	}

	if portStr, ok := os.LookupEnv("HTTP_API_PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("HTTP_API_PORT: %w", err)
		}
		c.HTTPAPIServer.Port = port
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.Log.Level = level
	}

	return nil
}

// ApplyFlags overrides the configuration with command line flags.
func (c *Config) ApplyFlags(args []string) error {
	flags := flag.NewFlagSet("liveness-probe", flag.ContinueOnError)

	httpAPIHost := flags.String("http-api-host", c.HTTPAPIServer.Host, "HTTP API host")
	httpAPIPort := flags.Int("http-api-port", c.HTTPAPIServer.Port, "HTTP API port")
	logLevel := flags.String("log-level", c.Log.Level, "Log level (debug, info, warn, error, off)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	c.HTTPAPIServer.Host = *httpAPIHost
	c.HTTPAPIServer.Port = *httpAPIPort
	c.Log.Level = *logLevel

	return c.Validate()
}

func (c Config) Validate() error {
	validator := validators.JSONSchemaValidator{}
	if err := validator.Validate(configSchema, c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Address() string {
	return net.JoinHostPort(c.HTTPAPIServer.Host, strconv.Itoa(c.HTTPAPIServer.Port))
}
