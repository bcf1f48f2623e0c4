package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the songdex binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	// Get the path of the currently running executable
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	execDir := filepath.Dir(execPath)

	// Get user home directory for config files
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp" // fallback
	}

	// Determine config directory (platform-specific)
	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin": // macOS
		return filepath.Join(homeDir, ".config", "songdex")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "songdex")
		}
		return filepath.Join(homeDir, ".config", "songdex")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "songdex")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "songdex")
	default:
		return filepath.Join(homeDir, ".songdex")
	}
}

// GetLibraryPath resolves the library text file the catalog loads on start.
// It tries multiple locations in order of preference:
// 1. User-specified path (if absolute, or existing relative to cwd)
// 2. Relative to executable directory
// 3. Relative to the config directory
// The first existing candidate wins; otherwise the cwd-relative path is
// returned so a later save creates the file where the user expects it.
func (pr *PathResolver) GetLibraryPath(userSpecifiedPath string) string {
	if filepath.IsAbs(userSpecifiedPath) {
		return userSpecifiedPath
	}

	var candidatePaths []string
	if cwd, err := os.Getwd(); err == nil {
		candidatePaths = append(candidatePaths, filepath.Join(cwd, userSpecifiedPath))
	}
	candidatePaths = append(candidatePaths,
		filepath.Join(pr.executableDir, userSpecifiedPath),
		filepath.Join(pr.configDir, userSpecifiedPath),
	)

	for _, path := range candidatePaths {
		if FileExists(path) {
			log.Debugf("Found library file: %s", path)
			return path
		}
		log.Debugf("Library file candidate not found: %s", path)
	}

	if len(candidatePaths) > 0 {
		return candidatePaths[0]
	}
	return userSpecifiedPath
}

// GetConfigPath returns the full path for a config file name
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if err := EnsureDir(pr.configDir); err != nil {
		return "", err
	}
	return filepath.Join(pr.configDir, filename), nil
}
