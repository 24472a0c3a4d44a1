package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds the MySQL connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig holds the token signing settings
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig holds the SMTP settings used for mailing reports
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SeedConfig sets the initial passwords of the default accounts. Only
// used while the users table is empty; bcrypt hashes are stored, never
// the plaintext.
type SeedConfig struct {
	AdminPassword  string `mapstructure:"admin_password"`
	MemberPassword string `mapstructure:"member_password"`
}

var (
	// GlobalConfig is the process-wide configuration instance
	GlobalConfig *Config
)

// LoadConfig loads the configuration.
// Precedence: MASJID_* env vars > external config file > embedded defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. embedded defaults
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("gagal membaca konfigurasi bawaan: %w", err)
	}

	// 2. optional external file overriding the defaults
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("peringatan: tidak bisa membaca %s: %v", configPath, err)
		} else {
			log.Printf("konfigurasi eksternal dimuat: %s", configPath)
		}
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/masjid")
		external.AddConfigPath("$HOME/.masjid")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("peringatan: gagal menggabungkan konfigurasi eksternal: %v", err)
			} else {
				log.Printf("konfigurasi eksternal dimuat: %s", external.ConfigFileUsed())
			}
		}
	}

	// 3. env overrides
	v.SetEnvPrefix("MASJID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("gagal mem-parse konfigurasi: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg
	return &cfg, nil
}

// GetConfig returns the global configuration
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("konfigurasi belum dimuat, panggil LoadConfig dulu")
	}
	return GlobalConfig
}

// PrintConfig logs a summary of the configuration, hiding secrets
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("konfigurasi aktif:")
	log.Printf("  server: %s (mode: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  database: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  email: %v", GlobalConfig.Email.Enabled)
}
