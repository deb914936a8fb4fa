package store

import (
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backends accepted by the `backend` setting.
const (
	BackendDisk   = "diskv"
	BackendSQLite = "sqlite"
)

// Config describes where and how trips are stored.
type Config interface {
	BasePath() string
	Backend() string
	Currency() string
	ShareBase() string
	LogLevel() string
}

// LoadConfig reads `.wendy` (yaml) from $WENDY_CONFIG_PATH or the working
// directory, with WENDY_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.wendy.db")
	viper.SetDefault("backend", BackendDisk)
	viper.SetDefault("currency", "EUR")
	viper.SetDefault("share_base", "http://localhost:3000")
	viper.SetDefault("log_level", "info")
	viper.SetConfigName(".wendy") // .yaml is implicit
	viper.SetEnvPrefix("WENDY")
	viper.AutomaticEnv()

	if override := os.Getenv("WENDY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:        path,
		BackendName: viper.GetString("backend"),
		CurrencyISO: viper.GetString("currency"),
		Share:       viper.GetString("share_base"),
		Level:       viper.GetString("log_level"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	CurrencyISO string `json:"currency"`
	Share       string `json:"share_base"`
	Level       string `json:"log_level"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) Backend() string   { return f.BackendName }
func (f *fileConfig) Currency() string  { return f.CurrencyISO }
func (f *fileConfig) ShareBase() string { return f.Share }
func (f *fileConfig) LogLevel() string  { return f.Level }
