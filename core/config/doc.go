// Package config provides configuration management for card-timers.
//
// It loads an optional .env file with godotenv, then maps environment variables onto
// the Config struct with Viper. Defaults come from the `default` struct tags of every
// section, and keys are addressed as SECTION_KEY (e.g. RESET_TIMEZONE).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key
//   - Log: Logging level and format
//   - Database: sqlite or mysql connection details
//   - Storage: S3/MinIO snapshot bucket
//   - CardLogger: Discord token, channel, author policy
//   - Reset: Timezone and reset hours
//   - Events: NATS url and subject
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reset.Timezone)
package config
