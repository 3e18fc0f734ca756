// Package config provides configuration management for rebar-check.
//
// It uses Viper to load settings from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, upload limit, session lifetime
//   - Storage: S3/MinIO credentials, bucket and prefix of stored schedules
//   - Log: logging level and format
//   - Ifc: default IFC property mapping (Tekla preset) and conflict policy
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. IFC_MAPPING_MARK or STORAGE_BUCKET.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
