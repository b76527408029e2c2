// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envSource looks variables up in the process environment first and the
// dotenv file second. The file is read, never exported into the process.
type envSource struct {
	dotenv map[string]string
}

func newEnvSource(envFile string) (envSource, error) {
	if strings.TrimSpace(envFile) == "" {
		return envSource{}, nil
	}
	values, err := godotenv.Read(envFile)
	if err != nil {
		return envSource{}, err
	}

	return envSource{dotenv: values}, nil
}

func (s envSource) get(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}

	return strings.TrimSpace(s.dotenv[key])
}
