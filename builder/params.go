// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// params.go - named model parameters.
//
// Resolution order for every key: the value passed to Configure, then the
// model default. Values are converted with spf13/cast, so YAML ints, JSON
// float64s and flag strings ("42", "0.1") are all accepted. A missing seed is
// drawn from the clock once and recorded in the resolved configuration, so
// Configuration() always replays the same network.

package builder

import (
	"maps"
	"sort"
	"time"

	"github.com/spf13/cast"
)

// Params maps parameter keys (ParamNumNodes, ParamP, ...) to values.
type Params map[string]any

// Clone returns a shallow copy; nil stays nil.
func (p Params) Clone() Params {
	return maps.Clone(p)
}

// Keys returns the parameter keys in ascending order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// lookup returns the first key present in p, then the first present in def.
func lookup(p, def Params, keys ...string) (any, string, bool) {
	for _, src := range []Params{p, def} {
		for _, k := range keys {
			if v, ok := src[k]; ok {
				return v, k, true
			}
		}
	}

	return nil, keys[0], false
}

// intParam resolves an int parameter under keys (first is canonical).
func intParam(method string, p, def Params, keys ...string) (int, error) {
	v, key, ok := lookup(p, def, keys...)
	if !ok {
		return 0, invalidConfig(ErrBadParam, method, "%s missing", key)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, invalidConfig(ErrBadParam, method, "%s=%v: %v", key, v, err)
	}

	return n, nil
}

// int64Param resolves an int64 parameter under keys.
func int64Param(method string, p, def Params, keys ...string) (int64, error) {
	v, key, ok := lookup(p, def, keys...)
	if !ok {
		return 0, invalidConfig(ErrBadParam, method, "%s missing", key)
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, invalidConfig(ErrBadParam, method, "%s=%v: %v", key, v, err)
	}

	return n, nil
}

// floatParam resolves a float64 parameter under keys.
func floatParam(method string, p, def Params, keys ...string) (float64, error) {
	v, key, ok := lookup(p, def, keys...)
	if !ok {
		return 0, invalidConfig(ErrBadParam, method, "%s missing", key)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, invalidConfig(ErrBadParam, method, "%s=%v: %v", key, v, err)
	}

	return f, nil
}

// seedParam resolves the seed, falling back to the clock.
func seedParam(method string, p Params) (int64, error) {
	v, ok := p[ParamSeed]
	if !ok || v == nil {
		return time.Now().UnixNano(), nil
	}
	seed, err := cast.ToInt64E(v)
	if err != nil {
		return 0, invalidConfig(ErrBadParam, method, "%s=%v: %v", ParamSeed, v, err)
	}

	return seed, nil
}
