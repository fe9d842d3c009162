package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go/v4"
	"github.com/spf13/viper"
)

var inputFields = []string{"Capital", "Interest", "Contribution", "Years"}

// LoadInput reads a projection input file. JSON, YAML and TOML are read by
// extension, .hjson files may carry comments and unquoted keys, and files
// without a known extension (e.g. Data.txt) are read as JSON. All four
// fields must be present.
func LoadInput(path string) (Input, error) {
	v := viper.New()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hjson":
		data, err := os.ReadFile(path)
		if err != nil {
			return Input{}, fmt.Errorf("%w: failed to read config file: %w", ErrMalformedInput, err)
		}
		var values map[string]interface{}
		if err := hjson.Unmarshal(data, &values); err != nil {
			return Input{}, fmt.Errorf("%w: failed to parse hjson config: %w", ErrMalformedInput, err)
		}
		if err := v.MergeConfigMap(values); err != nil {
			return Input{}, fmt.Errorf("%w: failed to load hjson config: %w", ErrMalformedInput, err)
		}
	default:
		v.SetConfigFile(path)
		if !isSupportedExt(ext) {
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil {
			return Input{}, fmt.Errorf("%w: failed to read config file: %w", ErrMalformedInput, err)
		}
	}

	for _, field := range inputFields {
		if !v.IsSet(field) {
			return Input{}, fmt.Errorf("%w: config file %s is missing field %s", ErrMalformedInput, path, field)
		}
	}

	var (
		in  Input
		err error
	)
	if in.Capital, err = fileFloat("capital", v.Get("Capital")); err != nil {
		return Input{}, err
	}
	if in.Interest, err = fileFloat("interest", v.Get("Interest")); err != nil {
		return Input{}, err
	}
	if in.Contribution, err = fileFloat("contribution", v.Get("Contribution")); err != nil {
		return Input{}, err
	}
	if in.Years, err = fileInt("years", v.Get("Years")); err != nil {
		return Input{}, err
	}
	return in, nil
}

// fileFloat accepts numeric values and numeric strings. Strings go through
// the same parser as positional arguments.
func fileFloat(name string, raw interface{}) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		return parseFloat(name, n)
	}
	return 0, fmt.Errorf("%w: bad input for %s %v", ErrMalformedInput, name, raw)
}

// fileInt accepts integral values only. Decoders that produce floats (json,
// hjson) must carry a whole number that fits in an int.
func fileInt(name string, raw interface{}) (int, error) {
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("%w: number overflow for %s %d", ErrMalformedInput, name, n)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: number overflow for %s %d", ErrMalformedInput, name, n)
		}
		return int(n), nil
	case float64:
		if math.IsNaN(n) || n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: bad input for %s %v", ErrMalformedInput, name, n)
		}
		if n < math.MinInt || n >= math.MaxInt {
			return 0, fmt.Errorf("%w: number overflow for %s %v", ErrMalformedInput, name, n)
		}
		return int(n), nil
	case string:
		return parseInt(name, n)
	}
	return 0, fmt.Errorf("%w: bad input for %s %v", ErrMalformedInput, name, raw)
}

func isSupportedExt(ext string) bool {
	switch ext {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
