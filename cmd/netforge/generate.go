package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netforge/builder"
	"github.com/katalvlaran/netforge/config"
	"github.com/katalvlaran/netforge/core"
	"github.com/katalvlaran/netforge/stats"
)

// Output formats of the generate command.
const (
	formatYAML = "yaml"
	formatText = "text"
)

// report is what generate prints.
type report struct {
	Model   string         `yaml:"model"`
	Params  builder.Params `yaml:"params"`
	Summary stats.Summary  `yaml:"summary"`
	Links   [][2]int       `yaml:"linkList,omitempty"`
}

func newGenerateCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		cfgPath    string
		format     string
		printLinks bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a network and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatYAML && format != formatText {
				return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatYAML, formatText)
			}

			spec, err := config.Load(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			model, err := spec.Build(builder.WithLogger(logger(cmd)))
			if err != nil {
				return err
			}
			g, err := model.Generate()
			if err != nil {
				return err
			}

			rep := report{
				Model:   model.Name(),
				Params:  model.Configuration(),
				Summary: stats.Summarize(g),
			}
			if printLinks {
				rep.Links = linkList(g)
			}

			return writeReport(cmd.OutOrStdout(), format, rep)
		},
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML model specification")
	cmd.Flags().StringVar(&format, "format", formatYAML, "output format: yaml or text")
	cmd.Flags().BoolVar(&printLinks, "print-links", false, "also print every link as a node id pair")

	return cmd
}

// linkList returns the endpoints of every link in catalog order.
func linkList(g *core.Network) [][2]int {
	out := make([][2]int, 0, g.LinkCount())
	for _, l := range g.Links() {
		out = append(out, [2]int{l.From().ID(), l.To().ID()})
	}

	return out
}

func writeReport(w io.Writer, format string, rep report) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}

		return enc.Close()
	}

	s := rep.Summary
	fmt.Fprintf(w, "model       %s\n", rep.Model)
	for _, key := range rep.Params.Keys() {
		fmt.Fprintf(w, "  %-9s %v\n", key, rep.Params[key])
	}
	fmt.Fprintf(w, "directed    %t\n", s.Directed)
	fmt.Fprintf(w, "nodes       %d\n", s.Nodes)
	fmt.Fprintf(w, "links       %d\n", s.Links)
	fmt.Fprintf(w, "degree      avg %.4f min %d max %d\n", s.AverageDegree, s.MinDegree, s.MaxDegree)
	fmt.Fprintf(w, "clustering  %.4f\n", s.Clustering)
	fmt.Fprintf(w, "components  %d\n", s.Components)
	fmt.Fprintf(w, "tree        %t\n", s.Tree)
	for _, l := range rep.Links {
		fmt.Fprintf(w, "%d %d\n", l[0], l[1])
	}

	return nil
}
