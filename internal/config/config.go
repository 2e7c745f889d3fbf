package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ServerConfig holds configuration variables for the server.
type ServerConfig struct {
	Host string
	Port string
}

// Addr returns the listen address for the server.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// DatabaseConfig holds configuration variables for the database.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// MailchimpConfig holds configuration variables for the mailing-list
// provider. An empty APIKey disables subscriptions.
type MailchimpConfig struct {
	APIKey       string
	ServerPrefix string // e.g. 'us1', 'us2', etc.
	AudienceID   string
	Timeout      time.Duration
}

// Config holds configuration information for the program.
type Config struct {
	Server    *ServerConfig
	Database  *DatabaseConfig
	Mailchimp *MailchimpConfig
	Remain    map[string]interface{} `mapstructure:",remain"`
}

// Current is the current configuration for the server.
var Current Config

func setConfigDefaults() {
	viper.SetDefault("server", map[string]interface{}{
		"host": "",
		"port": "3002",
	})

	viper.SetDefault("database", map[string]interface{}{
		"host":     "localhost",
		"port":     5432,
		"user":     "postgres",
		"password": "",
		"name":     "leadbook",
		"sslmode":  "disable",
	})

	viper.SetDefault("mailchimp", map[string]interface{}{
		"apikey":       "",
		"serverprefix": "us1",
		"audienceid":   "",
		"timeout":      "5s",
	})
}

// LoadConfig loads the config file from disk.
func LoadConfig() {
	viper.AddConfigPath("/etc/leadbook/")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".leadbook"))
	}
	viper.AddConfigPath(".")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	setConfigDefaults()

	viper.SetEnvPrefix("leadbook")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No configuration found. Running with defaults...")
		} else {
			panic(fmt.Errorf("Unable to read config file: %v", err))
		}
	}

	err = viper.Unmarshal(&Current)
	if err != nil {
		panic(fmt.Errorf("Error unmarshalling config: %v", err))
	}
}
