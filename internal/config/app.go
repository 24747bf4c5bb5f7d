package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LoadDotenv pulls a .env file into the environment when one exists.
// A missing file is not an error; anything else is.
func LoadDotenv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
