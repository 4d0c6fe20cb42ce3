package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/codehero.git/pkg/validator"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	App      AppConfig `mapstructure:"app" validate:"required"`
	BotToken string    `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig  `mapstructure:"db" validate:"required"`
	Env      string    `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout          time.Duration `mapstructure:"timeout" validate:"min=1"`
	PointsPerCorrect int           `mapstructure:"points_per_correct" validate:"min=1"`
}

type DBConfig struct {
	Driver string   `mapstructure:"driver" validate:"oneof=postgres sqlite3"`
	Conn   DBConn   `mapstructure:"conn" validate:"-"`
	SQLite DBSQLite `mapstructure:"sqlite" validate:"-"`
	Cfg    DBCfg    `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBSQLite struct {
	Path string `mapstructure:"path" validate:"required"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"bot_token":              "BOT_TOKEN",
	"env":                    "APP_ENV",
	"db.driver":              "DB_DRIVER",
	"db.conn.host":           "DB_HOST",
	"db.conn.port":           "DB_PORT",
	"db.conn.user":           "DB_USER",
	"db.conn.password":       "DB_PASSWORD",
	"db.conn.name":           "DB_NAME",
	"db.conn.ssl":            "DB_SSL",
	"db.sqlite.path":         "DB_SQLITE_PATH",
	"app.timeout":            "APP_TIMEOUT",
	"app.points_per_correct": "APP_POINTS_PER_CORRECT",
}

func Init() (*Config, error) {
	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return Load("configs", configName)
}

func Load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(name)

	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 5*time.Second)
	v.SetDefault("app.points_per_correct", 50)
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	switch cfg.DB.Driver {
	case DriverPostgres:
		if err := validator.ValidateStruct(cfg.DB.Conn); err != nil {
			return nil, fmt.Errorf("db.conn: %w", err)
		}
	case DriverSQLite:
		if err := validator.ValidateStruct(cfg.DB.SQLite); err != nil {
			return nil, fmt.Errorf("db.sqlite: %w", err)
		}
	}

	return &cfg, nil
}
