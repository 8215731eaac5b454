// file: internal/config/config.go
// version: 1.1.0
// guid: 9d0e1f2a-3b4c-5d6e-7f80-91a2b3c4d5e6

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Host               string
	Port               string
	DatabasePath       string
	TemplatesGlob      string
	GoogleBooksBaseURL string
	Debug              bool
}

var AppConfig Config

// InitConfig initializes the application configuration from viper
func InitConfig() {
	// Set defaults
	viper.SetDefault("host", "")
	viper.SetDefault("port", "5002")
	viper.SetDefault("database_path", "data/library.sqlite")
	viper.SetDefault("templates_glob", "web/templates/*.html")
	viper.SetDefault("google_books_base_url", "https://www.googleapis.com/books/v1")
	viper.SetDefault("debug", false)

	AppConfig = Config{
		Host:               viper.GetString("host"),
		Port:               viper.GetString("port"),
		DatabasePath:       viper.GetString("database_path"),
		TemplatesGlob:      viper.GetString("templates_glob"),
		GoogleBooksBaseURL: viper.GetString("google_books_base_url"),
		Debug:              viper.GetBool("debug"),
	}

	if AppConfig.DatabasePath == "" {
		AppConfig.DatabasePath = "data/library.sqlite"
	}
}
