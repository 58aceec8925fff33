package configs

import (
	"bytes"
	_ "embed"
	stdlog "log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weather-planner/pkg/msg"
	"weather-planner/pkg/resource"
)

//go:embed application.yml
var applicationYml []byte

//go:embed messages.yml
var messagesYml []byte

type EnvConfig struct {
	ApplicationName string
}

var Env *EnvConfig

func init() {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-planner"),
	}

	if err := resource.Load(bytes.NewReader(applicationYml)); err != nil {
		stdlog.Fatalf("Fail to load embedded properties: %v", err)
	}
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := resource.Init(path); err != nil {
			stdlog.Fatalf("Fail to load properties: %v", err)
		}
	}

	if err := msg.Load(bytes.NewReader(messagesYml)); err != nil {
		stdlog.Fatalf("Fail to load embedded messages: %v", err)
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := msg.Init(path); err != nil {
			stdlog.Fatalf("Fail to load messages: %v", err)
		}
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
