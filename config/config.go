package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// WebConfig holds the web server settings. Values come from environment
// variables and may be overridden by an optional catalog.toml file.
type WebConfig struct {
	Listen        string `toml:"listen"`
	Port          int    `toml:"port"`
	SessionMaxAge int    `toml:"sessionMaxAge"` // minutes
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CATALOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CATALOG_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CATALOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/catalog"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

// GetSessionSecret returns the cookie session signing secret, empty when the
// operator has not set one.
func GetSessionSecret() string {
	return os.Getenv("CATALOG_SESSION_SECRET")
}

// GetConfigFilePath returns the optional TOML config file location.
func GetConfigFilePath() string {
	configPath := os.Getenv("CATALOG_CONFIG_FILE")
	if configPath == "" {
		configPath = "catalog.toml"
	}
	return configPath
}

// GetWebConfig resolves the web server settings: defaults, then environment,
// then catalog.toml when present.
func GetWebConfig() (*WebConfig, error) {
	c := &WebConfig{
		Listen:        "",
		Port:          8080,
		SessionMaxAge: 60,
	}

	if listen := os.Getenv("CATALOG_LISTEN"); listen != "" {
		c.Listen = listen
	}
	if port := os.Getenv("CATALOG_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("CATALOG_PORT is not a valid port: %s", port)
		}
		c.Port = p
	}
	if maxAge := os.Getenv("CATALOG_SESSION_MAX_AGE"); maxAge != "" {
		m, err := strconv.Atoi(maxAge)
		if err != nil {
			return nil, fmt.Errorf("CATALOG_SESSION_MAX_AGE is not a number: %s", maxAge)
		}
		c.SessionMaxAge = m
	}

	data, err := os.ReadFile(GetConfigFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
