// Package config provides runtime configuration values for the service.
package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds configuration knobs for the HTTP server and the order
// pipeline. Business thresholds default to the demo rule set and are
// overridable from the environment.
type Config struct {
	HTTPAddr         string `mapstructure:"HTTP_ADDR"`
	ShutdownTimeoutS int    `mapstructure:"SHUTDOWN_TIMEOUT"`
	StageDelayMS     int    `mapstructure:"STAGE_DELAY_MS"`
	MaxOrderAmount   int64  `mapstructure:"MAX_ORDER_AMOUNT"`
	MinOrderQuantity int64  `mapstructure:"MIN_ORDER_QUANTITY"`
	ServiceableZones string `mapstructure:"SERVICEABLE_ZONES"`
}

// ShutdownTimeout is the grace period for HTTP shutdown.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutS) * time.Second
}

// StageDelay is the presentational pause inserted before each pipeline
// stage.
func (c Config) StageDelay() time.Duration {
	return time.Duration(c.StageDelayMS) * time.Millisecond
}

// Zones parses the serviceable-zone allow-list from its csv form.
func (c Config) Zones() []string {
	var zones []string
	for _, z := range strings.Split(c.ServiceableZones, ",") {
		if z = strings.TrimSpace(z); z != "" {
			zones = append(zones, z)
		}
	}
	return zones
}

// Load collects configuration from the environment with defaults.
func Load() Config {
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("SHUTDOWN_TIMEOUT", 15)
	viper.SetDefault("STAGE_DELAY_MS", 1000)
	viper.SetDefault("MAX_ORDER_AMOUNT", 5000)
	viper.SetDefault("MIN_ORDER_QUANTITY", 1)
	viper.SetDefault("SERVICEABLE_ZONES", "IN")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	v := reflect.ValueOf(&cfg).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		envKey := t.Field(i).Tag.Get("mapstructure")
		if envKey == "" {
			continue
		}
		if err := viper.BindEnv(envKey); err != nil {
			tempLogger := zap.Must(zap.NewProduction())
			defer tempLogger.Sync()
			tempLogger.Fatal("failed to bind env var", zap.String("key", envKey), zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		tempLogger := zap.Must(zap.NewProduction())
		defer tempLogger.Sync()
		tempLogger.Fatal("unable to decode config into struct", zap.Error(err))
	}
	return cfg
}
