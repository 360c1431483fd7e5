// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// registry.go - lookup of models by name.

package builder

import (
	"sort"

	"github.com/pkg/errors"
)

// registry maps model names to their constructor and default parameters.
var registry = map[string]struct {
	make     func(opts ...Option) Model
	defaults Params
}{
	ModelER:       {func(o ...Option) Model { return NewERModel(o...) }, erDefaults},
	ModelGilbert:  {func(o ...Option) Model { return NewGilbertModel(o...) }, gilbertDefaults},
	ModelBA:       {func(o ...Option) Model { return NewBAModel(o...) }, baDefaults},
	ModelBAForest: {func(o ...Option) Model { return NewBAForestModel(o...) }, baForestDefaults},
	ModelKRegular: {func(o ...Option) Model { return NewKRegularModel(o...) }, kRegularDefaults},
	ModelWS:       {func(o ...Option) Model { return NewWSModel(o...) }, wsDefaults},
}

// NewModel returns an unconfigured model registered under name.
// Errors: ErrUnknownModel.
func NewModel(name string, opts ...Option) (Model, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModel, "NewModel(%q)", name)
	}

	return entry.make(opts...), nil
}

// ModelNames returns the registered names in ascending order.
func ModelNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// DefaultParams returns a copy of the defaults Configure falls back to for
// the named model. Seeds have no default.
func DefaultParams(name string) (Params, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModel, "DefaultParams(%q)", name)
	}

	return entry.defaults.Clone(), nil
}
