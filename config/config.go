// Package config loads a model specification for the netforge CLI from a
// YAML file, NETFORGE_* environment variables and command-line flags, in
// increasing order of precedence.
//
// File layout:
//
//	model: ws
//	directed: false
//	params:
//	  numNodes: 100
//	  d: 3
//	  p: 0.1
//	  seed: 42
//
// Environment: NETFORGE_MODEL, NETFORGE_DIRECTED and
// NETFORGE_PARAMS_<KEY> (e.g. NETFORGE_PARAMS_SEED).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netforge/builder"
)

// EnvPrefix prefixes every environment variable Load consults.
const EnvPrefix = "NETFORGE"

// DefaultModel is used when neither file, environment nor flags name one.
const DefaultModel = builder.ModelWS

// Flag names registered by BindFlags.
const (
	FlagModel    = "model"
	FlagDirected = "directed"
	FlagNodes    = "nodes"
	FlagLinks    = "links"
	FlagDegree   = "degree"
	FlagP        = "p"
	FlagSeed     = "seed"
)

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("config: cannot read file")

	// ErrUnknownParam is returned for a parameter key no model understands.
	ErrUnknownParam = errors.New("config: unknown parameter")
)

// knownParams maps the lower-cased keys viper produces back to the
// canonical builder keys.
var knownParams = func() map[string]string {
	keys := []string{
		builder.ParamNumNodes, builder.ParamNumLinks, builder.ParamM,
		builder.ParamD, builder.ParamK, builder.ParamP, builder.ParamSeed,
	}
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = k
	}

	return m
}()

// Spec names a model and the parameters to configure it with.
type Spec struct {
	Model    string         `yaml:"model"`
	Directed bool           `yaml:"directed"`
	Params   builder.Params `yaml:"params"`
}

// BindFlags registers the flags Load understands on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagModel, DefaultModel, "model name ("+strings.Join(builder.ModelNames(), ", ")+")")
	fs.Bool(FlagDirected, false, "generate a directed network")
	fs.Int(FlagNodes, 0, "number of nodes (numNodes)")
	fs.Int64(FlagLinks, 0, "number of links for er (numLinks)")
	fs.Int(FlagDegree, 0, "degree: d for ba and ws, k for kregular")
	fs.Float64(FlagP, 0, "probability for gilbert and ws")
	fs.Int64(FlagSeed, 0, "random seed (default: clock)")
}

// Load resolves a Spec. path may be empty (no file); flags may be nil or a
// set prepared with BindFlags. Only flags the user changed override file
// and environment values.
func Load(path string, flags *pflag.FlagSet) (Spec, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(FlagModel, DefaultModel)
	v.SetDefault(FlagDirected, false)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Spec{}, fmt.Errorf("%w %q: %v", ErrReadConfig, path, err)
		}
	}

	if flags != nil {
		for _, name := range []string{FlagModel, FlagDirected} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return Spec{}, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	spec := Spec{
		Model:    strings.ToLower(v.GetString(FlagModel)),
		Directed: v.GetBool(FlagDirected),
		Params:   builder.Params{},
	}

	for key, val := range v.GetStringMap("params") {
		if canon, ok := knownParams[key]; ok {
			key = canon
		}
		spec.Params[key] = val
	}
	for lower, canon := range knownParams {
		if val := v.Get("params." + lower); val != nil {
			spec.Params[canon] = val
		}
	}

	if flags != nil {
		applyFlags(&spec, flags)
	}

	return spec, nil
}

// applyFlags copies changed parameter flags into spec.Params.
func applyFlags(spec *Spec, flags *pflag.FlagSet) {
	degreeKey := builder.ParamD
	if spec.Model == builder.ModelKRegular {
		degreeKey = builder.ParamK
	}
	targets := map[string]string{
		FlagNodes:  builder.ParamNumNodes,
		FlagLinks:  builder.ParamNumLinks,
		FlagDegree: degreeKey,
		FlagP:      builder.ParamP,
		FlagSeed:   builder.ParamSeed,
	}

	flags.Visit(func(f *pflag.Flag) {
		key, ok := targets[f.Name]
		if !ok {
			return
		}
		// numLinks and m are aliases; the flag must win over either.
		if key == builder.ParamNumLinks {
			delete(spec.Params, builder.ParamM)
		}
		spec.Params[key] = f.Value.String()
	})
}

// Validate checks the model name and parameter keys.
func (s Spec) Validate() error {
	if _, err := builder.DefaultParams(s.Model); err != nil {
		return fmt.Errorf("config: model %q: %w", s.Model, err)
	}
	for _, key := range s.Params.Keys() {
		if _, ok := knownParams[strings.ToLower(key)]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownParam, key)
		}
	}

	return nil
}

// Build validates s and returns its model, configured and ready to
// Generate. opts are passed to the model after WithDirected(s.Directed).
func (s Spec) Build(opts ...builder.Option) (builder.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	all := append([]builder.Option{builder.WithDirected(s.Directed)}, opts...)
	m, err := builder.NewModel(s.Model, all...)
	if err != nil {
		return nil, err
	}
	if err = m.Configure(s.Params); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return m, nil
}
