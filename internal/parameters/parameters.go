// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with a string like "food=10,tunnels=3", and applies them to the colony and
// hive configurations.
package parameters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/janpfeifer/antsGo/internal/generics"
	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString create params from user's configuration string.
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	config = strings.TrimSpace(config)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		subParts := strings.SplitN(part, "=", 2) // Split into up to 2 parts to handle '=' in values
		key := strings.TrimSpace(subParts[0])
		if len(subParts) == 1 {
			params[key] = ""
		} else {
			params[key] = strings.TrimSpace(subParts[1])
		}
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T interface{ bool | int | string }](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T interface{ bool | int | string }](params Params, key string, defaultValue T) (T, error) {
	vAny := (any)(defaultValue)
	var t T
	toT := func(v any) T { return v.(T) }
	switch vAny.(type) {
	case string:
		if value, exists := params[key]; exists {
			return toT(value), nil
		}
	case int:
		if value, exists := params[key]; exists && value != "" {
			parsedValue, err := strconv.Atoi(value)
			if err != nil {
				return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
			}
			return toT(parsedValue), nil
		}
	case bool:
		if value, exists := params[key]; exists {
			if value == "" || strings.ToLower(value) == "true" || value == "1" { // Empty value is considered "true"
				return toT(true), nil
			}
			if strings.ToLower(value) == "false" || value == "0" {
				return toT(false), nil
			}
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return defaultValue, nil
}

// checkAllUsed returns an error listing any parameters left in params.
func checkAllUsed(params Params, what string) error {
	if len(params) == 0 {
		return nil
	}
	unknown := slices.Collect(generics.SortedKeys(params))
	return errors.Errorf("unknown %s parameter(s): %s", what, strings.Join(unknown, ", "))
}

// ApplyToColony overrides the fields of cfg with the parameters "food", "tunnels", "length" and "moat"
// given in config (e.g.: "food=10,moat=3").
func ApplyToColony(config string, cfg *state.ColonyConfig) (err error) {
	params := NewFromConfigString(config)
	fields := []struct {
		key   string
		value *int
	}{
		{"food", &cfg.StartingFood},
		{"tunnels", &cfg.TunnelCount},
		{"length", &cfg.TunnelLength},
		{"moat", &cfg.MoatInterval},
	}
	for _, field := range fields {
		if *field.value, err = PopParamOr(params, field.key, *field.value); err != nil {
			return err
		}
	}
	return checkAllUsed(params, "colony")
}

// ApplyToHive overrides the fields of cfg with the parameters "armor", "damage" and "waves".
// Waves are given as "/" separated "turn:bees" pairs, e.g.: "armor=3,waves=2:1/3:1/15:8"; if
// given they replace all the configured waves.
func ApplyToHive(config string, cfg *state.HiveConfig) (err error) {
	params := NewFromConfigString(config)
	if cfg.Armor, err = PopParamOr(params, "armor", cfg.Armor); err != nil {
		return err
	}
	if cfg.Damage, err = PopParamOr(params, "damage", cfg.Damage); err != nil {
		return err
	}
	var waves string
	if waves, err = PopParamOr(params, "waves", ""); err != nil {
		return err
	}
	if waves != "" {
		if cfg.Waves, err = ParseWaves(waves); err != nil {
			return err
		}
	}
	return checkAllUsed(params, "hive")
}

// ParseWaves parses a "/" separated list of "turn:bees" pairs.
func ParseWaves(waves string) ([]state.Wave, error) {
	var parsed []state.Wave
	for _, part := range strings.Split(waves, "/") {
		turnAndCount := strings.SplitN(part, ":", 2)
		if len(turnAndCount) != 2 {
			return nil, errors.Errorf("invalid wave %q, it must be given as \"turn:bees\"", part)
		}
		turn, err := strconv.Atoi(strings.TrimSpace(turnAndCount[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid turn in wave %q", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(turnAndCount[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number of bees in wave %q", part)
		}
		parsed = append(parsed, state.Wave{Turn: turn, Count: count})
	}
	return parsed, nil
}
