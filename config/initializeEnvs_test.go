package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks the variables InitializeEnvsFrom reads and restores them
// when the test ends, including values godotenv.Overload sets.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "ICON_SOURCE_PATH", "ICON_PROJECT_ROOT"} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInitializeEnvsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := InitializeEnvsFrom(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourceImagePath != DefaultSourceImagePath {
		t.Errorf("unexpected source path %q", cfg.SourceImagePath)
	}
	if cfg.ProjectRoot != DefaultProjectRoot {
		t.Errorf("unexpected project root %q", cfg.ProjectRoot)
	}
}

func TestInitializeEnvsFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env", "ICON_SOURCE_PATH=/tmp/logo.jpg\nICON_PROJECT_ROOT=/srv/bp-control\n")

	cfg, err := InitializeEnvsFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourceImagePath != "/tmp/logo.jpg" {
		t.Errorf("unexpected source path %q", cfg.SourceImagePath)
	}
	if cfg.ProjectRoot != "/srv/bp-control" {
		t.Errorf("unexpected project root %q", cfg.ProjectRoot)
	}
}

func TestInitializeEnvsPrefersAppEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env", "ICON_PROJECT_ROOT=/from/dotenv\n")
	writeEnvFile(t, dir, ".env.ci", "ICON_PROJECT_ROOT=/from/ci\n")
	t.Setenv("APP_ENV", "ci")

	cfg, err := InitializeEnvsFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProjectRoot != "/from/ci" {
		t.Errorf("expected .env.ci to win, got %q", cfg.ProjectRoot)
	}
	if cfg.SourceImagePath != DefaultSourceImagePath {
		t.Errorf("unset source path should fall back to the default, got %q", cfg.SourceImagePath)
	}
}

func TestInitializeEnvsUsesProcessEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICON_SOURCE_PATH", "/env/icon.png")

	cfg, err := InitializeEnvsFrom(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourceImagePath != "/env/icon.png" {
		t.Errorf("unexpected source path %q", cfg.SourceImagePath)
	}
}

func TestDerivedDirs(t *testing.T) {
	cfg := NewConfig("/in.png", "/work/app")
	if got, want := cfg.AndroidResDir(), filepath.Join("/work/app", "android", "app", "src", "main", "res"); got != want {
		t.Errorf("AndroidResDir() = %q, want %q", got, want)
	}
	if got, want := cfg.PublicDir(), filepath.Join("/work/app", "public"); got != want {
		t.Errorf("PublicDir() = %q, want %q", got, want)
	}
}

func TestMipmapTable(t *testing.T) {
	expected := map[string]int{
		"mipmap-mdpi":    48,
		"mipmap-hdpi":    72,
		"mipmap-xhdpi":   96,
		"mipmap-xxhdpi":  144,
		"mipmap-xxxhdpi": 192,
	}
	if len(MipmapSizes) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(MipmapSizes))
	}
	for _, target := range MipmapSizes {
		side, ok := expected[target.Folder]
		if !ok {
			t.Errorf("unexpected folder %s", target.Folder)
			continue
		}
		if target.Size.Width != side || target.Size.Height != side {
			t.Errorf("%s: expected %dx%d, got %s", target.Folder, side, side, target.Size)
		}
	}
}

func TestInitializeEnvsPrefersDevFileByDefault(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env", "ICON_PROJECT_ROOT=/from/dotenv\n")
	writeEnvFile(t, dir, ".env.dev", "ICON_PROJECT_ROOT=/from/dev\n")

	cfg, err := InitializeEnvsFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProjectRoot != "/from/dev" {
		t.Errorf("expected .env.dev to win when APP_ENV is unset, got %q", cfg.ProjectRoot)
	}
}
