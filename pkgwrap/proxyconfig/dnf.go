package proxyconfig

import (
	"strconv"

	"gopkg.in/ini.v1"
)

const dnfConfPath = "/etc/dnf/dnf.conf"

// DnfBuilder sets the proxy keys dnf reads from the [main] section.
type DnfBuilder struct {
	Proxy Proxy
}

func (b *DnfBuilder) SystemPath() string {
	return dnfConfPath
}

func (b *DnfBuilder) Apply(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return err
	}

	main := cfg.Section("main")
	main.Key("proxy").SetValue(b.Proxy.URL)
	main.Key("timeout").SetValue(strconv.Itoa(b.Proxy.TimeoutSeconds))
	if b.Proxy.CACertPath != "" {
		main.Key("sslverify").SetValue("1")
		main.Key("sslcacert").SetValue(b.Proxy.CACertPath)
	}

	return cfg.SaveTo(path)
}
