package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/instance"
)

type tourOpts struct {
	instancePath string
	seed         int64
	deposit      bool
}

func newTourCmd(a *app) *cobra.Command {
	o := &tourOpts{}

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Construct one tour over an instance",
		Long: `Loads the instance, constructs one tour with a single ant and prints it.
With --deposit the ant then lays pheromone on every edge of its tour and the
resulting levels along the tour are logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.finish()
			return runTour(cmd, a, o)
		},
	}

	cmd.Flags().StringVarP(&o.instancePath, "instance", "i", "", "problem file (YAML)")
	cmd.Flags().Int64VarP(&o.seed, "seed", "s", 0, "random seed (omit for a fresh random stream)")
	cmd.Flags().BoolVarP(&o.deposit, "deposit", "d", false, "lay pheromone after construction")
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

func runTour(cmd *cobra.Command, a *app, o *tourOpts) error {
	inst, err := instance.Load(o.instancePath)
	if err != nil {
		return err
	}
	env, err := inst.Environment()
	if err != nil {
		return err
	}
	p := env.Params()
	a.log.Debug("instance loaded",
		"name", inst.Name,
		"nodes", env.NumNodes(),
		"alpha", p.Alpha,
		"beta", p.Beta,
		"total_pheromone", p.TotalPheromone,
		"initial_pheromone", p.InitialPheromone)

	var opts []aco.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, aco.WithSeed(o.seed))
	}
	ant, err := env.NewAnt(opts...)
	if err != nil {
		return err
	}

	length, err := ant.ConstructTour()
	if err != nil {
		return fmt.Errorf("construct tour: %w", err)
	}
	a.log.Info("tour constructed", "length", length)
	fmt.Fprintln(cmd.OutOrStdout(), ant.String())

	if !o.deposit {
		return nil
	}
	if err = ant.LayPheromone(); err != nil {
		return fmt.Errorf("lay pheromone: %w", err)
	}
	a.log.Info("pheromone laid", "per_edge", env.TotalPheromone()/length)

	tour := ant.Tour()
	for k := range tour {
		from, to := tour[k], tour[(k+1)%len(tour)]
		tau, err := env.PheromoneLevel(from, to)
		if err != nil {
			return err
		}
		a.log.Debug("edge", "from", from, "to", to, "pheromone", tau)
	}

	return nil
}
