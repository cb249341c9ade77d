// Package config loads the optional settings file for the scaffolder. The file
// holds KEY=value pairs, one per line, with '#' comments. Settings are
// read-only: the tool never writes state outside the generated project.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds scaffolder settings with thread-safe lookups
type Config struct {
	filePath string
	data     map[string]string
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.RWMutex
}

// New creates a new Config instance. An empty filePath yields a config that
// only serves the Defaults table.
func New(filePath string) *Config {
	return &Config{
		filePath: filePath,
		data:     make(map[string]string),
	}
}

// ensureLoaded loads configuration data from disk once before read operations.
// Callers must hold c.mu.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.load()
}

// Load reads configuration from file
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Config) load() error {
	if c.filePath == "" {
		c.loaded = true
		return nil
	}

	// A missing settings file is the normal case
	if _, err := os.Stat(c.filePath); os.IsNotExist(err) {
		c.loaded = true
		return nil
	}

	file, err := os.Open(c.filePath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key=value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			data[key] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	c.data = data
	c.loaded = true
	return nil
}

// Get retrieves a configuration value (thread-safe)
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	value, exists := c.data[key]
	if !exists {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return value, nil
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the config, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}
	if value, exists := c.data[key]; exists {
		return value
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// GetBool resolves a boolean setting. Unparseable values fall back to the
// Defaults table and then to false.
func (c *Config) GetBool(key string) bool {
	if v, err := strconv.ParseBool(c.GetOrDefault(key, "false")); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(Defaults[key]); err == nil {
		return v
	}
	return false
}

// Exists checks if a key exists (thread-safe)
func (c *Config) Exists(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return false
	}
	_, exists := c.data[key]
	return exists
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
