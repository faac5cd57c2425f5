package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config logger configuration
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// Desensitization holds field masking settings
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	FixedMaskLength int      `json:"fixed_mask_length" yaml:"fixed_mask_length"`
}

const (
	// defaultLevel is logrus.InfoLevel
	defaultLevel = 4
	// debugLevel is logrus.DebugLevel
	debugLevel = 5

	defaultMaskChar        = "*"
	defaultFixedMaskLength = 6
)

var defaultSensitiveFields = []string{
	"password", "passwd", "pwd",
	"token", "secret", "api_key",
	"dsn", "source",
}

// GetConfig returns the logger configuration.
// DEBUG=true forces the debug level regardless of logger.level.
func GetConfig(v *viper.Viper) *Config {
	c := &Config{
		Level:           defaultLevel,
		Format:          "json",
		Output:          "stdout",
		Desensitization: getDesensitization(v),
	}

	if v.IsSet("logger.level") {
		c.Level = v.GetInt("logger.level")
	}
	if f := strings.ToLower(v.GetString("logger.format")); f != "" {
		c.Format = f
	}
	if o := strings.ToLower(v.GetString("logger.output")); o != "" {
		c.Output = o
	}
	c.OutputFile = v.GetString("logger.output_file")

	if v.GetBool("debug") {
		c.Level = debugLevel
	}

	return c
}

func getDesensitization(v *viper.Viper) *Desensitization {
	d := &Desensitization{
		Enabled:         true,
		SensitiveFields: defaultSensitiveFields,
		MaskChar:        defaultMaskChar,
		FixedMaskLength: defaultFixedMaskLength,
	}
	if !v.IsSet("logger.desensitization") {
		return d
	}

	if v.IsSet("logger.desensitization.enabled") {
		d.Enabled = v.GetBool("logger.desensitization.enabled")
	}
	if fields := v.GetStringSlice("logger.desensitization.sensitive_fields"); len(fields) > 0 {
		d.SensitiveFields = fields
	}
	if mc := v.GetString("logger.desensitization.mask_char"); mc != "" {
		d.MaskChar = mc
	}
	if n := v.GetInt("logger.desensitization.fixed_mask_length"); n > 0 {
		d.FixedMaskLength = n
	}
	return d
}
