package config

import (
	"encoding/base64"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings carries the proxy contract read from the process environment.
// It is loaded once at startup and passed around explicitly; nothing reads
// the environment after that.
type Settings struct {
	UseProxy   string `env:"USE_PROXY"`
	ProxyURL   string `env:"HTTPS_PROXY"`
	CertBase64 string `env:"CERT_BASE64_STRING"`
}

// Load reads the settings from the process environment.
func Load() (Settings, error) {
	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ProxyEnabled reports whether proxy mode was requested. Only the literal
// value "true" enables it.
func (s Settings) ProxyEnabled() bool {
	return s.UseProxy == "true"
}

// WriteCertFile decodes the configured certificate into a fresh temporary
// file and returns its path, or "" when no certificate was supplied.
// Decode errors are not checked; whatever bytes did decode are written out.
func (s Settings) WriteCertFile() (string, error) {
	if s.CertBase64 == "" {
		return "", nil
	}

	data, _ := base64.StdEncoding.DecodeString(s.CertBase64)

	f, err := os.CreateTemp("", "pkgwrap-ca-*.crt")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}
