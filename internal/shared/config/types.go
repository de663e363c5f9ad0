package config

import (
	"fmt"
	"time"
)

type AppConfig struct {
	// Timezone decides calendar-day boundaries for "resolved today".
	// Empty or "Local" uses the host timezone.
	Timezone string `mapstructure:"timezone"`
	// AvgFirstResponseTime overrides the figure carried by the seed data.
	AvgFirstResponseTime string `mapstructure:"avg_first_response_time"`
	// SeedFile replaces the embedded seed dataset when set.
	SeedFile string `mapstructure:"seed_file"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// Debug shows source locations for every level.
	Debug bool `mapstructure:"debug"`
}

type StorageConfig struct {
	// Driver is one of memory, file, sqlite, mysql, redis.
	Driver    string         `mapstructure:"driver"`
	// Migration picks how SQL drivers create their schema: goose or auto.
	Migration string         `mapstructure:"migration"`
	File      FileConfig     `mapstructure:"file"`
	Database  DatabaseConfig `mapstructure:"database"`
	Redis     RedisConfig    `mapstructure:"redis"`
}

type FileConfig struct {
	Dir string `mapstructure:"dir"`
}

type DatabaseConfig struct {
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetMySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) GetConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Minute
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
