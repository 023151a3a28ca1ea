// Package assets provides the default templates shipped with the renderer.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/*
var templates embed.FS

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("embedded template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// LoadTemplate returns the content of an embedded template by name, without
// the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// TemplateNames lists the embedded template names in sorted order.
func TemplateNames() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		// The directory is embedded at compile time; failure to read it is
		// a programmer error.
		panic("reading embedded templates: " + err.Error())
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".html"))
	}
	sort.Strings(names)
	return names
}

// validateAssetName rejects names that traverse outside the asset tree.
func validateAssetName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
