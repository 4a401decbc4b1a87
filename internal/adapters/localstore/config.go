package localstore

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	Locale() string
}

// LoadConfig resolves where the tracker document lives. Precedence is env
// (DAYMA_PATH, DAYMA_LOCALE), then a .dayma config file, then defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultBasePath())
	viper.SetDefault("locale", "en")
	viper.SetConfigName(".dayma") // .yaml is implicit
	viper.SetEnvPrefix("DAYMA")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYMA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:       viper.GetString("path"),
		UserLocale: viper.GetString("locale"),
	}, nil
}

func defaultBasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".dayma.db"
	}
	return filepath.Join(dir, "dayma")
}

type fileConfig struct {
	Path       string `json:"path"`
	UserLocale string `json:"locale"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Locale() string {
	return f.UserLocale
}
