// Package embed provides embedded assets for cafe-install.
package embed

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed assets/*

// Assets contains all embedded files for cafe-install.
var Assets embed.FS

const (
	batchTemplate = "assets/start-cafe-system.bat.tmpl"
	shellTemplate = "assets/start-cafe-system.sh.tmpl"
)

// ScriptData holds the values substituted into a startup script template.
type ScriptData struct {
	Title         string
	LoginUser     string
	LoginPassword string
	WebURL        string
	StartCommand  string
}

var templateFuncs = template.FuncMap{
	"upper": strings.ToUpper,
}

// GetStartupTemplate returns the raw startup script template for the
// Windows batch dialect or the POSIX shell dialect.
func GetStartupTemplate(windows bool) (string, error) {
	filename := shellTemplate
	if windows {
		filename = batchTemplate
	}
	data, err := Assets.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RenderStartupScript renders the startup script for the given dialect.
// Batch scripts are returned with CRLF line endings. The last line carries
// no line terminator.
func RenderStartupScript(windows bool, data ScriptData) (string, error) {
	raw, err := GetStartupTemplate(windows)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("startup").Funcs(templateFuncs).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse startup template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render startup template: %w", err)
	}

	// The asset files end in a newline; the scripts themselves do not.
	content := strings.TrimSuffix(sb.String(), "\n")
	if windows {
		content = strings.ReplaceAll(content, "\n", "\r\n")
	}
	return content, nil
}
