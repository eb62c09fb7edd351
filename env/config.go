// Package env provides go-simpler.org/env sources that read configuration from
// a .env file, optionally underneath the process environment.
package env

import (
	"os"
	"strings"

	"nprofile.mleku.dev/chk"
)

// Env is a key/value map read from a file of KEY=value lines.
type Env map[string]string

// GetEnv reads a file of KEY=value lines in the usual shell environment format.
// Blank lines, lines starting with # and lines without an = are skipped, and
// values may be wrapped in double quotes.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		env[strings.TrimSpace(key)] = value
	}
	return
}

// LookupEnv returns the value of key from the file.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}

// OSFirst looks a key up in the process environment and falls back to the
// file, so the environment overrides the file.
type OSFirst Env

// LookupEnv implements the go-simpler.org/env Source interface.
func (env OSFirst) LookupEnv(key string) (value string, ok bool) {
	if value, ok = os.LookupEnv(key); ok {
		return
	}
	value, ok = env[key]
	return
}
