package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var dotEnvMap map[string]string

func init() {
	if err := Load(".env"); err != nil {
		panic(err)
	}
}

// Load replaces the cached .env values with the contents of path.
// A missing file is not an error; values then come from the process env only.
func Load(path string) error {
	m, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			dotEnvMap = map[string]string{}
			return nil
		}
		return err
	}
	dotEnvMap = m
	return nil
}

func getEnv(key string) string {
	// .env
	value := dotEnvMap[key]
	// os.Getenv
	if v := os.Getenv(key); v != "" {
		value = v
	}
	return value
}

func Get(key string) string {
	return getEnv(key)
}

func Default(key, def string) string {
	value := getEnv(key)
	if value == "" {
		return def
	}
	return value
}

func DefaultBool(key string, def bool) bool {
	value := getEnv(key)
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}
