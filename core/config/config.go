package config

import (
	"reflect"
	"strings"

	"timetable-manager/core/database"
	"timetable-manager/core/liss"
	"timetable-manager/core/logger"
	"timetable-manager/core/server"
	"timetable-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, split into partial
// configurations owned by the packages that consume them.
type Config struct {
	// Liss holds configuration for the LISS endpoint.
	Liss liss.Config `mapstructure:"liss"`
	// Server holds configuration for the kiosk artifact server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for artifact object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the audit database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine (e.g. production with real env vars).
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Walk the struct tags to register defaults for every key.
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LISS_ENDPOINT -> liss.endpoint)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default (even empty) to register the key for
		// AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
