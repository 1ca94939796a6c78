// Command simulate runs the simulation headless for a fixed span of days and
// prints the news feed. With the same seed, catalog and tick size, two runs
// produce identical output.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	staticcatalog "orebound/internal/adapter/catalog/static"
	memrepo "orebound/internal/adapter/repo/memory"
	"orebound/internal/app/launch"
	"orebound/internal/app/tick"
	"orebound/internal/domain/game"
	"orebound/internal/random"
)

const gameID = "simulate"

func main() {
	var (
		seed        int64
		days        float64
		tickDays    float64
		launchEvery float64
		catalogPath string
		balance     float64
		level       int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the orebound simulation headless and print the news feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(seed, days, tickDays, launchEvery, catalogPath, balance, level)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed; identical seeds replay identically")
	cmd.Flags().Float64Var(&days, "days", 365, "simulated days to run")
	cmd.Flags().Float64Var(&tickDays, "tick", 0.5, "simulated days per tick")
	cmd.Flags().Float64Var(&launchEvery, "launch-every", 30, "days between automatic launch attempts (0 disables)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog YAML path (default: compiled-in catalog)")
	cmd.Flags().Float64Var(&balance, "balance", 500000, "starting balance in credits")
	cmd.Flags().IntVar(&level, "level", 3, "player level")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(seed int64, days, tickDays, launchEvery float64, catalogPath string, balance float64, level int) error {
	if tickDays <= 0 || days <= 0 {
		return fmt.Errorf("days and tick must be positive")
	}

	src := random.NewSeeded(seed)
	catalog, err := staticcatalog.Load(catalogPath)
	if err != nil {
		return err
	}

	store := memrepo.NewStore(src)
	ctx := context.Background()

	epoch := time.Date(2049, time.January, 1, 0, 0, 0, 0, time.UTC)
	state := game.NewState(epoch, balance, level, src)
	if err := store.SaveWithVersion(ctx, gameID, state, 0); err != nil {
		return err
	}

	launchUC := launch.UseCase{States: store, Catalog: catalog, Rand: src}
	tickUC := tick.UseCase{States: store, NewsLog: store, Catalog: catalog, Rand: src}

	targets := catalog.Targets()
	nextLaunch := 0.0
	targetIdx := 0

	for elapsed := 0.0; elapsed < days; elapsed += tickDays {
		if launchEvery > 0 && elapsed >= nextLaunch && len(targets) > 0 {
			req := launch.Request{
				GameID:     gameID,
				TargetID:   targets[targetIdx%len(targets)].ID,
				ProviderID: "orbitalis",
				CrewID:     "veterans",
			}
			targetIdx++
			nextLaunch += launchEvery
			resp, err := launchUC.Execute(ctx, req)
			if err != nil {
				return err
			}
			if resp.Accepted {
				fmt.Printf("day %7.1f  [launch] mission to %s\n", elapsed, req.TargetID)
			} else {
				fmt.Printf("day %7.1f  [launch] rejected: %s\n", elapsed, resp.Rejected)
			}
		}

		resp, err := tickUC.Execute(ctx, tick.Request{GameID: gameID, Days: tickDays})
		if err != nil {
			return err
		}
		for _, item := range resp.News {
			fmt.Printf("day %7.1f  [%s] %s\n", item.Day, item.Category, item.Text)
		}
	}

	final, err := store.Load(ctx, gameID)
	if err != nil {
		return err
	}
	log.Printf("finished: day %.1f, balance %.0f, %d missions still active",
		final.SimDay, final.Player.Balance, len(final.Missions))
	return nil
}
