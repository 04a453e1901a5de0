package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/deen/internal/util"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings are the user-tunable options. Location is a display label only.
type Settings struct {
	Location    string `mapstructure:"location"`
	TasbeehGoal int    `mapstructure:"tasbeeh_goal"`
	Theme       string `mapstructure:"theme"`
	LogLevel    string `mapstructure:"log_level"`
	DBPath      string `mapstructure:"db_path"`
	ReportDir   string `mapstructure:"report_dir"`
}

// LoadSettings reads config.yaml from dataDir (optional), then DEEN_* env
// vars, then an optional .env in the working directory.
func LoadSettings(dataDir string) (Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("location", DefaultLocation)
	v.SetDefault("tasbeeh_goal", DefaultTasbeehGoal)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("log_level", "info")
	v.SetDefault("db_path", filepath.Join(dataDir, DBFileName))
	v.SetDefault("report_dir", util.ReportsDir(AppName))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if s.TasbeehGoal <= 0 {
		s.TasbeehGoal = DefaultTasbeehGoal
	}
	return s, nil
}
