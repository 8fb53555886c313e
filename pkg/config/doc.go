// Package config loads typed configuration structs from the environment or
// from YAML files.
//
// Load reads `env:"..."` tagged fields (loading a local .env file once per
// process when present); LoadYAML reads a YAML file with strict key
// checking. Both have Must variants for configuration the process cannot
// start without.
//
//	type SMTPConfig struct {
//	    Host string `env:"SMTP_HOST,required"`
//	    Port int    `env:"SMTP_PORT" envDefault:"587"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil { ... }
package config
