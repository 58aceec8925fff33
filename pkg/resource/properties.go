package resource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Load merges YAML properties read from r, resolving ${ENV:default} placeholders.
func Load(r io.Reader) error {
	source := viper.New()
	source.SetConfigType("yml")
	if err := source.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	resolved := resolveMap(source.AllSettings())

	mu.Lock()
	defer mu.Unlock()
	if err := properties.MergeConfigMap(resolved); err != nil {
		return fmt.Errorf("fail to merge properties: %w", err)
	}
	return nil
}

// Init merges the YAML file at filepath over the properties already loaded.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("fail to read properties file %s: %w", filepath, err)
	}
	return Load(bytes.NewReader(content))
}

// resolveMap walks the YAML tree and resolves env placeholders in string leaves
func resolveMap(data map[string]any) map[string]any {
	result := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			result[key] = resolveEnvVariable(v)
		case map[string]any:
			result[key] = resolveMap(v)
		default:
			result[key] = v
		}
	}
	return result
}

// resolveEnvVariable replaces each ${NAME:default} with the env value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a single property at runtime.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

func IsSet(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return properties.IsSet(key)
}

func Get(key string) any {
	mu.RLock()
	defer mu.RUnlock()
	return properties.Get(key)
}

func GetString(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetString(key)
}

func GetBool(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetStringSlice(key)
}
