package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConfig wraps every malformed configuration value.
var ErrInvalidConfig = errors.New("invalid config value")

// Configs holds configuration values keyed by service (or role) name, then option name.
// Values keep whatever type the JSON or YAML decoder produced.
type Configs map[string]map[string]any

// Lookup returns the raw value stored under service/name.
func (c Configs) Lookup(service, name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	opts, ok := c[service]
	if !ok {
		return nil, false
	}
	v, ok := opts[name]
	return v, ok
}

// Int returns the value under service/name as an int. The second result is false
// when the option is unset; an error is returned when it is set but not numeric.
func (c Configs) Int(service, name string) (int, bool, error) {
	f, ok, err := c.Float(service, name)
	if !ok || err != nil {
		return 0, ok, err
	}
	if f != math.Trunc(f) {
		return 0, true, fmt.Errorf("%w: %s.%s: %v is not an integer", ErrInvalidConfig, service, name, f)
	}
	return int(f), true, nil
}

// Float returns the value under service/name as a float64.
func (c Configs) Float(service, name string) (float64, bool, error) {
	v, ok := c.Lookup(service, name)
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case uint64:
		return float64(n), true, nil
	case float64:
		return n, true, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s.%s: %q is not a number", ErrInvalidConfig, service, name, n)
		}
		return f, true, nil
	default:
		return 0, true, fmt.Errorf("%w: %s.%s: unsupported type %T", ErrInvalidConfig, service, name, v)
	}
}

// Bool returns the value under service/name as a bool.
func (c Configs) Bool(service, name string) (bool, bool, error) {
	v, ok := c.Lookup(service, name)
	if !ok {
		return false, false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, true, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, true, fmt.Errorf("%w: %s.%s: %q is not a boolean", ErrInvalidConfig, service, name, b)
		}
		return parsed, true, nil
	default:
		return false, true, fmt.Errorf("%w: %s.%s: unsupported type %T", ErrInvalidConfig, service, name, v)
	}
}
