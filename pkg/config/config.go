package config

import (
	"fmt"
	"strings"

	"addressbook/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Contact sources selectable through CONTACTS_SOURCE.
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
	SourceDynamoDB = "dynamodb"
	SourceBolt     = "bolt"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	ContactsSource string `envconfig:"CONTACTS_SOURCE"`

	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	DynamoDB struct {
		Region        string `envconfig:"DDB_REGION"`
		Endpoint      string `envconfig:"DDB_ENDPOINT"`
		AccessKey     string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey     string `envconfig:"DDB_SECRET_KEY"`
		SessionToken  string `envconfig:"DDB_SESSION_TOKEN"`
		ContactsTable string `envconfig:"DDB_CONTACTS_TABLE"`
	}
	Bolt struct {
		Path string `envconfig:"BOLT_PATH"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

// Source returns the normalized contact source, memory when unset.
func (c *Config) Source() (string, error) {
	source := strings.ToLower(strings.TrimSpace(c.ContactsSource))
	switch source {
	case "":
		return SourceMemory, nil
	case SourceMemory, SourcePostgres, SourceDynamoDB, SourceBolt:
		return source, nil
	default:
		return "", errs.Errorf(errs.EINVALID, "unknown contacts source %q", c.ContactsSource)
	}
}
