package proxyconfig

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const pacmanConfPath = "/etc/pacman.conf"

// PacmanBuilder sets an XferCommand in the [options] section so every
// transfer goes through curl with the proxy applied.
type PacmanBuilder struct {
	Proxy Proxy
}

func (b *PacmanBuilder) SystemPath() string {
	return pacmanConfPath
}

func (b *PacmanBuilder) Apply(path string) error {
	// pacman.conf carries bare keys (Color, CheckSpace) and repeated
	// Include/Server keys, which need the loose load options.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys: true,
		AllowShadows:     true,
	}, path)
	if err != nil {
		return err
	}

	cfg.Section("options").Key("XferCommand").SetValue(b.xferCommand())

	return cfg.SaveTo(path)
}

func (b *PacmanBuilder) xferCommand() string {
	parts := []string{
		"/usr/bin/curl",
		"--proxy", b.Proxy.URL,
		"--retry", "3",
		"--retry-delay", "3",
		"--connect-timeout", strconv.Itoa(b.Proxy.TimeoutSeconds),
	}
	if b.Proxy.CACertPath != "" {
		parts = append(parts, "--cacert", b.Proxy.CACertPath)
	}
	parts = append(parts, "-L", "-C", "-", "-f", "-o", "%o", "%u")
	return strings.Join(parts, " ")
}
