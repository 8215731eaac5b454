// file: cmd/root.go
// version: 1.2.0
// guid: 7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"booklibrary/internal/config"
	"booklibrary/internal/database"
	"booklibrary/internal/metadata"
	"booklibrary/internal/server"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var databasePath string
var serverPort string
var serverHost string
var templatesGlob string
var debugMode bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "booklibrary",
	Short: "Manage a library catalog of authors and books",
	Long: `Book Library is a small web application for managing a library catalog.

It serves HTML forms for adding authors and books, lists the catalog with
sorting and title search, and resolves cover images per ISBN through the
Google Books volume API.`,
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Start the web server providing the catalog pages and submission forms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := database.NewSQLiteStore(config.AppConfig.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		fmt.Printf("Using database: %s\n", config.AppConfig.DatabasePath)

		covers := metadata.NewGoogleBooksClient(config.AppConfig.GoogleBooksBaseURL)

		srv := server.NewServer(store, covers, config.AppConfig.TemplatesGlob)
		cfg := server.GetDefaultServerConfig()

		if port := cmd.Flag("port").Value.String(); port != "" {
			cfg.Port = port
		}
		if host := cmd.Flag("host").Value.String(); host != "" {
			cfg.Host = host
		}
		if rt := cmd.Flag("read-timeout").Value.String(); rt != "" {
			if d, err := time.ParseDuration(rt); err == nil {
				cfg.ReadTimeout = d
			}
		}
		if wt := cmd.Flag("write-timeout").Value.String(); wt != "" {
			if d, err := time.ParseDuration(wt); err == nil {
				cfg.WriteTimeout = d
			}
		}

		return srv.Start(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.booklibrary.yaml)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "data/library.sqlite", "path to the SQLite database file")
	rootCmd.PersistentFlags().StringVar(&templatesGlob, "templates", "web/templates/*.html", "glob for HTML templates")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "run the server in debug mode")

	viper.BindPFlag("database_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("templates_glob", rootCmd.PersistentFlags().Lookup("templates"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverPort, "port", "", "port to run the web server on")
	serveCmd.Flags().StringVar(&serverHost, "host", "", "host to bind the web server to")
	serveCmd.Flags().String("read-timeout", "15s", "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("write-timeout", "15s", "write timeout (e.g. 15s, 1m)")
}

func initConfig() {
	// Local .env overrides are read before viper consults the environment
	_ = godotenv.Load(".env")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".booklibrary")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()

	// Ensure the database directory exists before the store opens the file
	if dir := filepath.Dir(config.AppConfig.DatabasePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating database directory: %v\n", err)
		}
	}
}
