// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env struct tags, with optional .env
// file support via github.com/joho/godotenv.
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
package config
