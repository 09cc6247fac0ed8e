// Package config loads typed configuration from environment variables.
//
// Structs are annotated with github.com/caarlos0/env tags:
//
//	type ServeConfig struct {
//		Env       string `env:"APP_ENV" envDefault:"development"`
//		Store     string `env:"SCHEMA_STORE" envDefault:"dir"`
//		SchemaDir string `env:"SCHEMA_DIR" envDefault:"./schemas"`
//	}
//
//	var cfg ServeConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first call to Load reads a .env file from the working directory, if
// one exists, using github.com/joho/godotenv. Variables already present in
// the process environment win over the file. LoadEnv loads additional files
// explicitly.
//
// Parsed values are cached per struct type and prefix, so repeated Load
// calls are cheap and return the same values. Reset clears the cache.
package config
