package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	LoadJWT()
}

// LoadJWT reads JWT_SECRET and JWT_EXPIRATION again, for use after a .env
// file has been loaded.
func LoadJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 24 * time.Hour
	if d, err := time.ParseDuration(os.Getenv("JWT_EXPIRATION")); err == nil && d > 0 {
		JWTExpiration = d
	}
}
