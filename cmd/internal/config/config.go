package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	envVarsPrefix = "/blogapi/prod/"
	awsRegion     = "us-east-2"

	DefaultPort          = "7070"
	DefaultDBPath        = "database.db"
	DefaultSnowflakeNode = 1
	DefaultBodyLimit     = "1M"
)

var ErrNoTokenKey = errors.New("either JWT_SECRET or JWKS_URL must be set")

type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	JWKSURL       string
	SnowflakeNode int64
	BodyLimit     string
}

// Load exports the environment for the current stage and reads it.
// Production pulls parameters from SSM, anything else reads .env if present.
func Load(ctx context.Context) (*Config, error) {
	if IsProduction() {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

func IsProduction() bool {
	return os.Getenv("GO_ENV") == "production"
}

// FromEnv reads the configuration from already exported variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", DefaultPort),
		DBPath:        getEnv("DB_PATH", DefaultDBPath),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWKSURL:       os.Getenv("JWKS_URL"),
		SnowflakeNode: DefaultSnowflakeNode,
		BodyLimit:     getEnv("BODY_LIMIT", DefaultBodyLimit),
	}

	if raw := os.Getenv("SNOWFLAKE_NODE"); raw != "" {
		node, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || node < 0 || node > 1023 {
			return nil, fmt.Errorf("invalid SNOWFLAKE_NODE %q, expected 0-1023", raw)
		}
		cfg.SnowflakeNode = node
	}
	return cfg, nil
}

// RequireTokenKey fails when no way of verifying tokens is configured.
func (c *Config) RequireTokenKey() error {
	if c.JWTSecret == "" && c.JWKSURL == "" {
		return ErrNoTokenKey
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsRegion))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	prefixLength := len(envVarsPrefix)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := aws.ToString(param.Name)[prefixLength:]
			if err = os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}
