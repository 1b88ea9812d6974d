package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	godotenv "github.com/joho/godotenv"
)

const (
	DefaultSourceImagePath = `C:\Users\shiva\.gemini\antigravity\brain\412acd42-7243-4f85-98b3-e540e672f8bb\uploaded_media_1769438198203.jpg`
	DefaultProjectRoot     = `d:\Users\shiva\Documents\bp-control`
)

type Config struct {
	SourceImagePath string
	ProjectRoot     string
}

func NewConfig(sourceImagePath string, projectRoot string) *Config {
	return &Config{
		SourceImagePath: sourceImagePath,
		ProjectRoot:     projectRoot,
	}
}

// AndroidResDir is the parent of the mipmap-* folders.
func (c *Config) AndroidResDir() string {
	return filepath.Join(c.ProjectRoot, "android", "app", "src", "main", "res")
}

func (c *Config) PublicDir() string {
	return filepath.Join(c.ProjectRoot, "public")
}

func InitializeEnvs() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working dir: %w", err)
	}
	return InitializeEnvsFrom(wd)
}

// InitializeEnvsFrom loads .env.<APP_ENV> (.env.dev when unset) or .env from dir, then reads the
// overrides. Without either file or variable the fixed defaults apply.
func InitializeEnvsFrom(dir string) (*Config, error) {
	log.WithField("dir", dir).Debug("loading environment")

	var candidates []string
	switch appEnv := os.Getenv("APP_ENV"); appEnv {
	case "dev", "":
		candidates = []string{".env.dev", ".env"}
	default:
		candidates = []string{".env." + appEnv, ".env"}
	}
	loaded := false
	for _, name := range candidates {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Overload(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		log.Debugf("loaded %s", name)
		loaded = true
		break
	}
	if !loaded {
		log.Debug("no env file found, using defaults and system environment variables")
	}

	source := os.Getenv("ICON_SOURCE_PATH")
	if source == "" {
		source = DefaultSourceImagePath
	}
	root := os.Getenv("ICON_PROJECT_ROOT")
	if root == "" {
		root = DefaultProjectRoot
	}
	return NewConfig(source, root), nil
}
