package proxyconfig

import (
	"fmt"
	"os"
)

const aptConfPath = "/etc/apt/apt.conf"

// AptBuilder appends Acquire directives in apt's scoped option syntax,
// which is not INI and is written as plain text.
type AptBuilder struct {
	Proxy Proxy
}

func (b *AptBuilder) SystemPath() string {
	return aptConfPath
}

func (b *AptBuilder) Apply(path string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	// A source file that does not end in a newline would otherwise absorb
	// the first directive into its last line.
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		if _, err := fmt.Fprintln(f); err != nil {
			f.Close()
			return err
		}
	}

	lines := []string{
		fmt.Sprintf("Acquire::https::proxy \"%s\";", b.Proxy.URL),
		fmt.Sprintf("Acquire::http::Timeout \"%d\";", b.Proxy.TimeoutSeconds),
		fmt.Sprintf("Acquire::https::Timeout \"%d\";", b.Proxy.TimeoutSeconds),
	}
	if b.Proxy.CACertPath != "" {
		lines = append(lines,
			"Acquire::https::Verify-Peer \"true\";",
			fmt.Sprintf("Acquire::https::CaInfo \"%s\";", b.Proxy.CACertPath),
		)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
