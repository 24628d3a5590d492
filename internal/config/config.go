// Package config loads the application configuration from defaults,
// an optional config file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dompetku/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is the configuration for the API server and the CLI.
type Config struct {
	APIURL           string   // Public URL of the API, used to build links
	ListenAddress    string   // Address the HTTP server listens on
	DBPath           string   // Path of the SQLite database file
	LogFormat        string   // "human", "json" or empty to choose by GinMode
	LogLevel         string   // zerolog level, empty to choose by GinMode
	GinMode          string   // One of debug, release, test
	CORSAllowOrigins []string // Origins allowed for CORS requests. Empty disables CORS
	EnablePprof      bool     // Serve pprof under /debug/pprof
	Currency         string   // ISO 4217 code used to format amounts
	Locale           string   // BCP 47 tag used to format amounts
}

var defaults = map[string]any{
	"api_url":            "http://localhost:8080",
	"listen_address":     ":8080",
	"db_path":            "data/dompetku.db",
	"log_format":         "",
	"log_level":          "",
	"gin_mode":           gin.ReleaseMode,
	"cors_allow_origins": "",
	"enable_pprof":       false,
	"currency":           "IDR",
	"locale":             "id",
}

// Load reads the configuration.
//
// Precedence from highest to lowest is environment variables, the .env file
// in the working directory, the config file and the defaults. file can be
// empty if no config file is used.
func Load(file string) (Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Keys are looked up in upper case in the environment
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	return Config{
		APIURL:           v.GetString("api_url"),
		ListenAddress:    v.GetString("listen_address"),
		DBPath:           v.GetString("db_path"),
		LogFormat:        v.GetString("log_format"),
		LogLevel:         v.GetString("log_level"),
		GinMode:          v.GetString("gin_mode"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		Currency:         v.GetString("currency"),
		Locale:           v.GetString("locale"),
	}, nil
}

// Validate checks all values and returns all problems at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.URL(); err != nil {
		errs = append(errs, err)
	}

	if c.ListenAddress == "" {
		errs = append(errs, errors.New("LISTEN_ADDRESS must not be empty"))
	}

	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH must not be empty"))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is invalid, must be one of human, json", c.LogFormat))
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL %q is invalid: %w", c.LogLevel, err))
		}
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q is invalid, must be one of debug, release, test", c.GinMode))
	}

	if _, err := c.Formatter(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("API_URL %q is invalid: %w", c.APIURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("API_URL %q must be an absolute http or https URL", c.APIURL)
	}

	return u, nil
}

// Formatter returns the formatter for the configured currency and locale.
func (c Config) Formatter() (money.Formatter, error) {
	return money.NewFormatter(c.Currency, c.Locale)
}
