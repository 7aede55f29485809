package liss

import (
	"fmt"
	"os"
)

// Config holds configuration for the LISS endpoint.
type Config struct {
	// Endpoint is the LISS JSON-RPC endpoint URL.
	Endpoint string `mapstructure:"endpoint" default:""`
	// School is the school identifier sent with every call.
	School string `mapstructure:"school" default:""`
	// Username authenticates the call. UsernameEnv takes precedence when
	// set, naming an environment variable holding the value.
	Username    string `mapstructure:"username" default:""`
	UsernameEnv string `mapstructure:"username_env" default:""`
	// Password authenticates the call; PasswordEnv works like UsernameEnv.
	Password    string `mapstructure:"password" default:""`
	PasswordEnv string `mapstructure:"password_env" default:""`
	// Version is the LISS protocol version.
	Version int `mapstructure:"version" default:"10002"`
	// UserAgent identifies this client to the endpoint.
	UserAgent string `mapstructure:"user_agent" default:"TimetableKiosk"`
	// Structure is the timetable structure to fetch bell times for.
	Structure string `mapstructure:"structure" default:"main"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries bounds retry attempts for transient failures.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
}

// Credentials resolves the username and password, preferring the
// environment variables when configured.
func (c Config) Credentials() (username, password string, err error) {
	username = c.Username
	if c.UsernameEnv != "" {
		username = os.Getenv(c.UsernameEnv)
		if username == "" {
			return "", "", fmt.Errorf("environment variable %s is not set", c.UsernameEnv)
		}
	}
	if username == "" {
		return "", "", fmt.Errorf("either username or username_env must be configured")
	}

	password = c.Password
	if c.PasswordEnv != "" {
		password = os.Getenv(c.PasswordEnv)
		if password == "" {
			return "", "", fmt.Errorf("environment variable %s is not set", c.PasswordEnv)
		}
	}
	if password == "" {
		return "", "", fmt.Errorf("either password or password_env must be configured")
	}

	return username, password, nil
}
