package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type config struct {
	authHeader   string
	authUsers    map[string]string
	identityPass int
	color        bool
}

func parse() (*config, error) {
	authHeader := getenv("AUTH_HEADER", "X-Auth-User")
	if strings.ContainsAny(authHeader, ": \r\n") {
		return nil, fmt.Errorf("invalid AUTH_HEADER value")
	}

	users, err := parseAuthUsers()
	if err != nil {
		return nil, err
	}

	identityPass, err := strconv.Atoi(getenv("IDENTITY_PASS", "0"))
	if err != nil || identityPass < 0 {
		return nil, fmt.Errorf("invalid IDENTITY_PASS value")
	}

	color := !getenvBool("NO_COLOR", false)

	return &config{
		authHeader:   authHeader,
		authUsers:    users,
		identityPass: identityPass,
		color:        color,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// parseAuthUsers reads AUTH_USERS as a comma separated list of user:hash
// pairs. Hashes are bcrypt and contain no colons.
func parseAuthUsers() (map[string]string, error) {
	users := make(map[string]string)
	raw := getenv("AUTH_USERS", "")
	if raw == "" {
		return users, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		user, hash, found := strings.Cut(strings.TrimSpace(entry), ":")
		if !found || user == "" || hash == "" {
			return nil, fmt.Errorf("invalid AUTH_USERS entry %q", entry)
		}
		users[user] = hash
	}
	return users, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
