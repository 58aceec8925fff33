package msg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu       sync.RWMutex
	messages = make(map[string]string)
)

// Load merges the YAML message catalog read from r.
func Load(r io.Reader) error {
	source := viper.New()
	source.SetConfigType("yml")
	if err := source.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	parseMessageMap("", source.AllSettings(), messages)
	return nil
}

// Init merges the message file at filepath over the loaded catalog.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("fail to read messages file %s: %w", filepath, err)
	}
	return Load(bytes.NewReader(content))
}

// parseMessageMap flattens the yml tree into dotted keys
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message for key with {n} placeholders replaced by args.
func GetMessage(key string, args ...interface{}) string {
	mu.RLock()
	message, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}

	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive checks if the provided value is of a primitive kind.
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
