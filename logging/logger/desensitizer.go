package logger

import (
	"regexp"
	"strings"

	"github.com/ncobase/microservicio/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// dsnCredentials matches the user:password part of a URL style DSN
var dsnCredentials = regexp.MustCompile(`(://[^:/@\s]+):([^@\s]+)@`)

// Desensitizer masks sensitive data in log fields
type Desensitizer struct {
	config *config.Desensitization
	mask   string
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	return &Desensitizer{
		config: cfg,
		mask:   strings.Repeat(cfg.MaskChar, cfg.FixedMaskLength),
	}
}

// DesensitizeFields returns a copy of fields with sensitive values masked
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if d == nil || !d.config.Enabled {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = d.desensitizeValue(key, value)
	}
	return result
}

// DesensitizeString masks credentials embedded in a connection string
func (d *Desensitizer) DesensitizeString(s string) string {
	if d == nil || !d.config.Enabled || s == "" {
		return s
	}
	return dsnCredentials.ReplaceAllString(s, "$1:"+d.mask+"@")
}

func (d *Desensitizer) desensitizeValue(key string, value any) any {
	if value == nil {
		return nil
	}
	if d.isSensitiveField(key) {
		if s, ok := value.(string); ok && s == "" {
			return s
		}
		return d.mask
	}
	switch v := value.(type) {
	case string:
		return d.DesensitizeString(v)
	case error:
		return d.DesensitizeString(v.Error())
	default:
		return value
	}
}

func (d *Desensitizer) isSensitiveField(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, f := range d.config.SensitiveFields {
		if strings.Contains(lower, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// desensitizeHook applies the desensitizer to every entry before it is written
type desensitizeHook struct {
	d *Desensitizer
}

func (h *desensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *desensitizeHook) Fire(entry *logrus.Entry) error {
	entry.Data = h.d.DesensitizeFields(entry.Data)
	entry.Message = h.d.DesensitizeString(entry.Message)
	return nil
}
