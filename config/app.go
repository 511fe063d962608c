package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	Port          string
	SSL           bool
	SessionSecret []byte
	GinMode       string
}

func LoadAppConfig() AppConfig {
	ssl, _ := strconv.ParseBool(os.Getenv("SSL"))
	return AppConfig{
		Port:          getenv("PORT", "8080"),
		SSL:           ssl,
		SessionSecret: []byte(getenv("SESSION_SECRET", "change-this-session-secret")),
		GinMode:       getenv("GIN_MODE", "debug"),
	}
}
