package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Store drivers for the record store.
const (
	StoreDriverCSV      = "csv"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Store        Store        `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Admin        Admin        `mapstructure:",squash"`
	DailySummary DailySummary `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Store selects and configures the record store backend.
type Store struct {
	Driver  string `mapstructure:"store_driver"`
	DataDir string `mapstructure:"data_dir"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
}

// Admin seeds the first user when the user table is empty.
type Admin struct {
	Username string `mapstructure:"admin_username"`
	Password string `mapstructure:"admin_password"`
}

type DailySummary struct {
	CronSchedule string `mapstructure:"daily_summary_cron"`
	Enabled      bool   `mapstructure:"daily_summary_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("STORE_DRIVER", StoreDriverCSV)
	viper.SetDefault("DATA_DIR", "data")

	viper.SetDefault("DATABASE_URL", "localhost:5432/foodcity")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")

	viper.SetDefault("DAILY_SUMMARY_CRON", "0 7 * * *") // every day at 7am
	viper.SetDefault("DAILY_SUMMARY_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("no .env readable by viper, relying on environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s",
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from ", location)
			return
		}
	}
}
