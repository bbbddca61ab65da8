package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Env struct {
	Server  ServerConfig
	Source  SourceConfig
	API     APIConfig
	MongoDB MongoDBConfig
	Store   StoreConfig
	List    ListConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int `validate:"min=1,max=65535"`
}

type SourceConfig struct {
	Kind string `validate:"oneof=remote mongodb"`
	// SeedFile is a JSON fixture stored into MongoDB at start.
	SeedFile string
}

type APIConfig struct {
	BaseURL string `validate:"omitempty,url"`
	Timeout time.Duration
}

type MongoDBConfig struct {
	Host     string
	Port     int `validate:"omitempty,min=1,max=65535"`
	User     string
	Password string
	DB       string
}

// URI builds the connection string. Credentials are added only when a user
// is configured.
func (c MongoDBConfig) URI() string {

	if c.User == "" {
		return fmt.Sprintf("mongodb://%s:%d", c.Host, c.Port)
	}

	return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.User, c.Password, c.Host, c.Port)
}

type StoreConfig struct {
	Kind          string `validate:"oneof=memory redis"`
	RedisAddr     string `validate:"required_if=Kind redis"`
	RedisPassword string
	RedisDB       int `validate:"min=0"`
	KeyPrefix     string
}

type ListConfig struct {
	PageSize  int    `validate:"min=1"`
	Delimiter string `validate:"required"`
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=text json"`
}

var (
	setupEnv sync.Once
	env      Env
	envErr   error
)

// GetEnv reads the configuration once per process. A .env file in the
// working directory is loaded first when it exists; real environment
// variables win over it.
func GetEnv() (*Env, error) {

	setupEnv.Do(func() {
		env, envErr = Load(".env")
	})

	if envErr != nil {
		return nil, envErr
	}

	return &env, nil
}

func Load(dotEnvFiles ...string) (Env, error) {

	for _, file := range dotEnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var parseErr error
	getInt := func(key string, fallback int) int {

		value := os.Getenv(key)
		if value == "" {
			return fallback
		}

		parsed, err := strconv.Atoi(value)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%s: %w", key, err)
		}

		return parsed
	}

	apiTimeout := 10 * time.Second
	if value := os.Getenv("API_TIMEOUT"); value != "" {

		parsed, err := time.ParseDuration(value)
		if err != nil {
			return Env{}, fmt.Errorf("API_TIMEOUT: %w", err)
		}

		apiTimeout = parsed
	}

	loaded := Env{
		Server: ServerConfig{
			Port: getInt("SERVER_PORT", 8080),
		},
		Source: SourceConfig{
			Kind:     getString("SOURCE", "remote"),
			SeedFile: os.Getenv("SEED_FILE"),
		},
		API: APIConfig{
			BaseURL: os.Getenv("API_BASE_URL"),
			Timeout: apiTimeout,
		},
		MongoDB: MongoDBConfig{
			Host:     getString("MONGODB_HOST", "localhost"),
			Port:     getInt("MONGODB_PORT", 27017),
			User:     os.Getenv("MONGODB_USER"),
			Password: os.Getenv("MONGODB_PASSWORD"),
			DB:       getString("MONGODB_NAME", "travel_admin"),
		},
		Store: StoreConfig{
			Kind:          getString("STORE", "memory"),
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getInt("REDIS_DB", 0),
			KeyPrefix:     getString("REDIS_KEY_PREFIX", "travel-admin:"),
		},
		List: ListConfig{
			PageSize:  getInt("PAGE_SIZE", 10),
			Delimiter: getString("CSV_DELIMITER", ","),
		},
		Log: LogConfig{
			Level:  getString("LOG_LEVEL", "info"),
			Format: getString("LOG_FORMAT", "text"),
		},
	}

	if parseErr != nil {
		return Env{}, parseErr
	}

	if err := validator.New().Struct(loaded); err != nil {
		return Env{}, err
	}

	if loaded.Source.Kind == "remote" && loaded.API.BaseURL == "" {
		return Env{}, errors.New("API_BASE_URL is required when SOURCE is remote")
	}

	return loaded, nil
}

func getString(key, fallback string) string {

	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
