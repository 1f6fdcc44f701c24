package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	lookupURLEnvKey     = "OPENLIBRARY_URL"
	lookupTimeoutEnvKey = "LOOKUP_TIMEOUT_SECONDS"
)

const (
	defaultLookupURL     = "https://openlibrary.org"
	defaultLookupTimeout = 5 * time.Second
)

type App struct {
	Port            string
	DBConnectionURL string
	LookupURL       string
	LookupTimeout   time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	lookupURL, ok := os.LookupEnv(lookupURLEnvKey)
	if !ok {
		lookupURL = defaultLookupURL
	}

	lookupTimeout := defaultLookupTimeout
	if raw, ok := os.LookupEnv(lookupTimeoutEnvKey); ok {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return App{}, fmt.Errorf("invalid %s value: %q", lookupTimeoutEnvKey, raw)
		}
		lookupTimeout = time.Duration(seconds) * time.Second
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		LookupURL:       lookupURL,
		LookupTimeout:   lookupTimeout,
	}, nil
}
