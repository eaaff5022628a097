// Package config defines and loads the settings that drive a generation run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Pubzeee/nasikoai/internal/utils"
)

const (
	// LocalConfigFileName is the optional per-project configuration file.
	LocalConfigFileName = ".nasikoai.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".nasikoai"
	// GlobalConfigFileName is the configuration file inside the global directory.
	GlobalConfigFileName = "config.yaml"

	// DefaultMaxCharsPerFile caps how many characters of each file enter the digest.
	DefaultMaxCharsPerFile = 5000
	// DefaultModelName is the generation model used when no override is given.
	DefaultModelName = "gemini-2.0-flash"
	// DefaultCooldownSeconds is the pre-call pause keeping runs under the
	// free-tier requests-per-minute ceiling.
	DefaultCooldownSeconds = 12
)

// Settings holds every knob of a generation run. Values are passed into
// constructors explicitly so tests can substitute their own.
type Settings struct {
	SupportedExtensions []string
	ExclusionPatterns   []string
	MaxCharsPerFile     int
	ModelName           string
	CooldownSeconds     int
}

// fileSettings mirrors Settings in the shape viper decodes from YAML.
// Pointer and slice fields distinguish "absent" from zero values during merge.
type fileSettings struct {
	Extensions      []string `mapstructure:"extensions"`
	Exclude         []string `mapstructure:"exclude"`
	MaxChars        *int     `mapstructure:"max_chars"`
	Model           string   `mapstructure:"model"`
	CooldownSeconds *int     `mapstructure:"cooldown_seconds"`
}

// DefaultSettings returns the static defaults: the supported-extension set and
// the exclusion patterns covering version control metadata, dependency and
// build output directories, and editor state.
func DefaultSettings() Settings {
	return Settings{
		SupportedExtensions: []string{
			".py", ".js", ".ts", ".go", ".md", ".txt", ".html", ".css",
			".json", ".yaml", ".yml", ".java", ".c", ".cpp", ".h", ".hpp",
		},
		ExclusionPatterns: []string{
			".git", "__pycache__", "node_modules", ".idea", ".vscode",
			"venv", "env", ".env", "dist", "build", "coverage", "*.pyc",
		},
		MaxCharsPerFile: DefaultMaxCharsPerFile,
		ModelName:       DefaultModelName,
		CooldownSeconds: DefaultCooldownSeconds,
	}
}

// Load returns the defaults overlaid with the global configuration file and
// then with the project-local one found in projectDirectory. Missing files
// are not an error; unreadable or malformed files are.
func Load(projectDirectory string) (Settings, error) {
	merged := DefaultSettings()

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
		globalSettings, loadError := loadSettingsFromPath(globalPath)
		if loadError != nil {
			return Settings{}, loadError
		}
		merged = merged.merge(globalSettings)
	}

	if projectDirectory != "" {
		localPath := filepath.Join(projectDirectory, LocalConfigFileName)
		localSettings, loadError := loadSettingsFromPath(localPath)
		if loadError != nil {
			return Settings{}, loadError
		}
		merged = merged.merge(localSettings)
	}

	merged.SupportedExtensions = utils.DeduplicatePatterns(merged.SupportedExtensions)
	merged.ExclusionPatterns = utils.DeduplicatePatterns(merged.ExclusionPatterns)
	return merged, nil
}

func loadSettingsFromPath(path string) (fileSettings, error) {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fileSettings{}, nil
		}
		return fileSettings{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if fileInformation.IsDir() {
		return fileSettings{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return fileSettings{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var decoded fileSettings
	if decodeError := reader.Unmarshal(&decoded); decodeError != nil {
		return fileSettings{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return decoded, nil
}

// merge overlays override onto the receiver returning the combined settings.
func (settings Settings) merge(override fileSettings) Settings {
	result := settings
	if len(override.Extensions) > 0 {
		result.SupportedExtensions = append([]string{}, override.Extensions...)
	}
	if len(override.Exclude) > 0 {
		result.ExclusionPatterns = append([]string{}, override.Exclude...)
	}
	if override.MaxChars != nil {
		result.MaxCharsPerFile = *override.MaxChars
	}
	if override.Model != "" {
		result.ModelName = override.Model
	}
	if override.CooldownSeconds != nil {
		result.CooldownSeconds = *override.CooldownSeconds
	}
	return result
}
