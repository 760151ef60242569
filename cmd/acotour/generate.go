package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acotsp/instance"
)

type generateOpts struct {
	kind   string
	nodes  int
	radius float64
	side   float64
	seed   int64
	out    string
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic instance",
		Long: `Writes a circle or uniform-random instance as YAML, to --out or stdout.
Circle instances have a known optimum: the polygon in index order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.finish()
			return runGenerate(cmd, a, o)
		},
	}

	cmd.Flags().StringVarP(&o.kind, "kind", "k", "circle", "instance kind: circle | uniform")
	cmd.Flags().IntVarP(&o.nodes, "nodes", "n", 10, "number of nodes")
	cmd.Flags().Float64Var(&o.radius, "radius", 1, "circle radius")
	cmd.Flags().Float64Var(&o.side, "side", 100, "square side for uniform points")
	cmd.Flags().Int64VarP(&o.seed, "seed", "s", 1, "seed for uniform points")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output path (default stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, o *generateOpts) error {
	var (
		inst *instance.Instance
		err  error
	)
	switch o.kind {
	case "circle":
		inst, err = instance.Circle(o.nodes, o.radius)
	case "uniform":
		inst, err = instance.RandomUniform(o.nodes, o.side, o.seed)
	default:
		return fmt.Errorf("unknown kind %q (want circle or uniform)", o.kind)
	}
	if err != nil {
		return err
	}

	if o.out == "" {
		data, err := inst.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err = inst.Save(o.out); err != nil {
		return err
	}
	a.log.Info("instance written", "name", inst.Name, "nodes", inst.NumNodes(), "path", o.out)

	return nil
}
