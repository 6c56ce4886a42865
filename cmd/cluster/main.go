package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/drakos74/free-cluster/infra/config"
	cluster "github.com/drakos74/free-cluster/internal"
	"github.com/drakos74/free-cluster/internal/math/ml"
	"github.com/drakos74/free-cluster/internal/metrics"
	"github.com/drakos74/free-cluster/internal/storage"
	"github.com/drakos74/free-cluster/internal/storage/file/csv"
	"github.com/drakos74/free-cluster/internal/storage/file/json"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	config     string
	factor     int
	iterations int
	seed       int64
	shuffle    bool
	store      bool
	metrics    string
	debug      bool
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "cluster [data_file] [features to use...]",
		Short: "Evaluate how well clustering recovers the labels of a dataset",
		Long: `Clusters the samples of the data file, ignoring their labels, maps every cluster
to its majority label and reports the entropy of the merged label groups.
The first column of the data file is the label, the rest are numeric features.
Feature indices are 0-based positions among the features; by default all features are used.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				_ = cmd.Usage()
				return fmt.Errorf("missing data file")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			indices, err := parseIndices(args[1:])
			if err != nil {
				return err
			}

			return run(cmd, cfg, args[0], indices, f.metrics)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "json config file")
	cmd.Flags().IntVar(&f.factor, "factor", 0, "number of clusters per distinct label")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "maximum k-means iterations")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed for shuffling and centroid initialisation (0 picks one)")
	cmd.Flags().BoolVar(&f.shuffle, "shuffle", true, "shuffle the samples before clustering")
	cmd.Flags().BoolVar(&f.store, "store", false, "store the evaluation as json")
	cmd.Flags().StringVar(&f.metrics, "metrics", "", "write the prometheus metrics to the given file")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "debug logging")

	return cmd
}

// loadConfig applies the explicitly set flags on top of the given config file,
// or the default one under infra/config.
func loadConfig(cmd *cobra.Command, f flags) (config.Cluster, error) {
	load := func() (config.Cluster, error) {
		return config.LoadDefault("cluster")
	}
	if f.config != "" {
		load = func() (config.Cluster, error) {
			return config.Load(f.config)
		}
	}
	cfg, err := load()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("factor") {
		cfg.Factor = f.factor
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if cmd.Flags().Changed("shuffle") {
		cfg.Shuffle = f.shuffle
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = f.store
	}
	return cfg, cfg.Validate()
}

func parseIndices(args []string) ([]int, error) {
	indices := make([]int, len(args))
	for i, arg := range args {
		index, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid feature index '%s': %w", arg, err)
		}
		indices[i] = index
	}
	return indices, nil
}

func run(cmd *cobra.Command, cfg config.Cluster, file string, indices []int, metricsFile string) error {
	ds, err := csv.Parse(file)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	var store storage.Persistence = storage.NewVoidStorage()
	if cfg.Store {
		store, err = json.BlobShard(cfg.Table)(storage.EvaluationDir)
		if err != nil {
			return fmt.Errorf("could not create storage: %w", err)
		}
	}

	engine, err := cluster.NewEngine(ml.NewKMeans(cfg.Iterations).Seed(cfg.Seed), cfg)
	if err != nil {
		return err
	}

	result, err := engine.WithStore(store).Run(name, ds, indices...)
	if metricsFile != "" {
		if err := metrics.Dump(metricsFile); err != nil {
			log.Warn().Err(err).Str("file", metricsFile).Msg("could not dump metrics")
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
