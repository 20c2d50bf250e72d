// Command falcon is the CLI surface spec.md's "Out of scope (external
// collaborators)" clause leaves to hosts: it reads the job
// configuration and communication JSON shapes of spec.md §6, fetches
// routes from a SQLite store, and prints the computed odds. Grounded
// on the original Python project's falcon/cli.py (argparse, a single
// cfg_file positional argument) generalized to cobra's root+subcommand
// shape, since the Go rendition also exposes a concurrent "batch" mode
// the original never had (spec.md §5).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/DiZ-02/millenium-falcon-challenge/batch"
	"github.com/DiZ-02/millenium-falcon-challenge/config"
	"github.com/DiZ-02/millenium-falcon-challenge/job"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
	"github.com/DiZ-02/millenium-falcon-challenge/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "falcon",
		Short: "Compute the Millennium Falcon's odds of reaching its rendezvous undetected",
	}
	root.AddCommand(newSolveCmd(), newBatchCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <config.json> <communication.json>",
		Short: "Solve a single job and print its odds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, comm, err := loadInputs(args[0], args[1])
			if err != nil {
				return err
			}

			s, err := store.Open(cfg.RoutesDB)
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := s.BuildGraph()
			if err != nil {
				return err
			}

			rt := risk.BuildTable(comm.AsSightings())
			odds, err := job.Solve(config.AsJobParams(cfg, comm), g, rt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "odds: %s\n", humanize.FormatFloat("#,###.####", odds))
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <config.json> <communication.json>...",
		Short: "Solve the same routes_db against many communication files concurrently",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readJobConfig(args[0])
			if err != nil {
				return err
			}

			s, err := store.Open(cfg.RoutesDB)
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := s.BuildGraph()
			if err != nil {
				return err
			}

			reqs := make([]batch.Request, 0, len(args)-1)
			for _, commPath := range args[1:] {
				comm, err := readCommunication(commPath)
				if err != nil {
					return err
				}
				reqs = append(reqs, batch.Request{
					Params: config.AsJobParams(cfg, comm),
					Risk:   risk.BuildTable(comm.AsSightings()),
				})
			}

			results, err := batch.Solve(context.Background(), g, reqs)
			if err != nil {
				return err
			}

			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: error: %v\n", r.Index, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: odds: %s\n", r.Index, humanize.FormatFloat("#,###.####", r.Odds))
			}
			return nil
		},
	}
}

func readJobConfig(path string) (config.JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.JobConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return config.ParseJobConfig(data)
}

func readCommunication(path string) (config.Communication, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Communication{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return config.ParseCommunication(data)
}

func loadInputs(cfgPath, commPath string) (config.JobConfig, config.Communication, error) {
	cfg, err := readJobConfig(cfgPath)
	if err != nil {
		return config.JobConfig{}, config.Communication{}, err
	}
	comm, err := readCommunication(commPath)
	if err != nil {
		return config.JobConfig{}, config.Communication{}, err
	}
	return cfg, comm, nil
}
