// Package config provides configuration management for the focusdeck backend.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, session token secret, body limit)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials for soundscape audio
//   - Log: Logging level and format
//
// Defaults come from `default` struct tags; environment variables override
// them using SECTION_KEY naming (SERVER_PORT, DATABASE_HOST, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
