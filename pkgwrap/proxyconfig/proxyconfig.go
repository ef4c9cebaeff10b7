package proxyconfig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Proxy carries the values injected into a manager's configuration copy.
type Proxy struct {
	URL            string
	CACertPath     string
	TimeoutSeconds int
}

// Builder renders proxy directives into a copied manager configuration in
// that manager's native syntax.
type Builder interface {
	// SystemPath is the canonical location of the manager's configuration.
	SystemPath() string

	// Apply injects the proxy directives into the file at path.
	Apply(path string) error
}

// NewBuilder returns the builder for the named manager.
func NewBuilder(manager string, proxy Proxy) (Builder, error) {
	switch manager {
	case "pacman":
		return &PacmanBuilder{Proxy: proxy}, nil
	case "dnf":
		return &DnfBuilder{Proxy: proxy}, nil
	case "apt":
		return &AptBuilder{Proxy: proxy}, nil
	default:
		return nil, fmt.Errorf("no proxy config builder for package manager %q", manager)
	}
}

// CopyToTemp copies the file at src into a fresh temporary file and returns
// the new path. The copy is byte-for-byte; directives only appear once a
// Builder is applied.
func CopyToTemp(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp("", filepath.Base(src)+".*")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
