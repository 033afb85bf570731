package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/dongho-jung/cafeinstall/internal/constants"
	"github.com/dongho-jung/cafeinstall/internal/install"
	"github.com/dongho-jung/cafeinstall/internal/platform"
	"github.com/dongho-jung/cafeinstall/internal/runner"
)

func TestNew(t *testing.T) {
	tempDir := t.TempDir()

	app, err := New(tempDir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if app.ProjectDir != tempDir {
		t.Errorf("ProjectDir = %q, want %q", app.ProjectDir, tempDir)
	}
	if app.Config == nil {
		t.Fatal("Config is nil, want defaults")
	}
	if app.Config.InstallCommand != constants.DefaultInstallCommand {
		t.Errorf("InstallCommand = %q, want %q", app.Config.InstallCommand, constants.DefaultInstallCommand)
	}
	if app.Platform == nil || app.Runner == nil || app.Fs == nil {
		t.Error("New() left a host capability unset")
	}
}

func TestNewRelativePath(t *testing.T) {
	app, err := New(".")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !filepath.IsAbs(app.ProjectDir) {
		t.Errorf("ProjectDir = %q, want absolute path", app.ProjectDir)
	}
}

func TestFsRootedAtProjectDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	app, err := New(tempDir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	exists, err := afero.Exists(app.Fs, "package.json")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("package.json not visible through app.Fs")
	}

	if err := afero.WriteFile(app.Fs, "cafe.db", nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "cafe.db")); err != nil {
		t.Errorf("cafe.db not written into project dir: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		projectFile string // content of cafe-install.yaml in the project, "" for none
		explicit    string // content of a config passed by path, "" for none
		wantInstall string
		wantErr     bool
	}{
		{
			name:        "defaults without file",
			wantInstall: "npm install",
		},
		{
			name:        "project file",
			projectFile: "install_command: npm ci\n",
			wantInstall: "npm ci",
		},
		{
			name:        "explicit file wins",
			projectFile: "install_command: npm ci\n",
			explicit:    "install_command: pnpm install\n",
			wantInstall: "pnpm install",
		},
		{
			name:        "emptied value restored",
			projectFile: "install_command: \"\"\n",
			wantInstall: "npm install",
		},
		{
			name:        "unknown key",
			projectFile: "instal_command: npm ci\n",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			if tt.projectFile != "" {
				path := filepath.Join(tempDir, constants.ConfigFileName)
				if err := os.WriteFile(path, []byte(tt.projectFile), 0644); err != nil {
					t.Fatalf("WriteFile() error = %v", err)
				}
			}

			var explicitPath string
			if tt.explicit != "" {
				explicitPath = filepath.Join(t.TempDir(), "custom.yaml")
				if err := os.WriteFile(explicitPath, []byte(tt.explicit), 0644); err != nil {
					t.Fatalf("WriteFile() error = %v", err)
				}
			}

			app, err := New(tempDir)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			err = app.LoadConfig(explicitPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if app.Config.InstallCommand != tt.wantInstall {
				t.Errorf("InstallCommand = %q, want %q", app.Config.InstallCommand, tt.wantInstall)
			}
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	app, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() error = nil, want error for missing explicit file")
	}
}

type recordingRunner struct {
	calls []string
}

func (r *recordingRunner) Run(_ context.Context, command string) runner.Result {
	r.calls = append(r.calls, command)
	return runner.Result{Command: command}
}

type presentRuntime struct{}

func (presentRuntime) OS() platform.OS { return platform.Unix }

func (presentRuntime) RuntimeVersion(context.Context, string) (string, error) {
	return "v20.11.0", nil
}

func TestInstallerUsesAppCapabilities(t *testing.T) {
	tempDir := t.TempDir()
	for _, dir := range []string{"server", "client"} {
		if err := os.Mkdir(filepath.Join(tempDir, dir), 0755); err != nil {
			t.Fatalf("Mkdir() error = %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(tempDir, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	app, err := New(tempDir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := &recordingRunner{}
	app.SetRunner(rec)
	app.Platform = presentRuntime{}

	var out bytes.Buffer
	if err := app.Installer(&out, install.WithPauser(install.NopPauser())).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out.String())
	}

	if len(rec.calls) != 2 {
		t.Errorf("runner calls = %v, want install and build", rec.calls)
	}
	for _, name := range []string{"cafe.db", "start-cafe-system.sh"} {
		if _, err := os.Stat(filepath.Join(tempDir, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}
