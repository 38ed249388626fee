package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature/yaml"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	metadataInput string
	setOutput     string
	maxDBConns    int
}

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitProbability int
	seed             int64
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Copy a set of data from one source (CSV, SQLite3, PostgreSQL, MongoDB or redis) into another`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Logf("Reading features from metadata at %s...", config.metadataInput)
			features, err := yaml.ReadFeaturesFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Features from metadata read")
			samples, err := readSamples(config.Context(), config.logger, config.setInput, config.maxDBConns, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			output, closeOutput, err := openWriter(config.Context(), config.logger, config.setOutput, config.maxDBConns, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer closeOutput()
			err = writeSamples(config, output, samples)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis connection URL with the set to read (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis connection URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time on SQLite3 sets (defaults to 0: no limit)")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to obtain a training and a testing set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Logf("Reading features from metadata at %s...", config.metadataInput)
			features, err := yaml.ReadFeaturesFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Features from metadata read")
			samples, err := readSamples(config.Context(), config.logger, config.setInput, config.maxDBConns, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			output, closeOutput, err := openWriter(config.Context(), config.logger, config.setOutput, config.maxDBConns, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer closeOutput()
			splitOutput, closeSplitOutput, err := openWriter(config.Context(), config.logger, config.splitOutput, config.maxDBConns, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer closeSplitOutput()
			kept, split := splitSamples(samples, config.splitProbability, config.seed)
			err = writeSamples(config.setCmdConfig, output, kept)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			err = writeSamples(config.setCmdConfig, splitOutput, split)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(10)
			}
			config.Logf("Done")
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", len(samples), len(kept), len(split))
		},
	}
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis connection URL to dump the split set (required)")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples (defaults to 0: seeded from the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	err := scc.setCmdConfig.Validate()
	if err != nil {
		return err
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

/*
splitSamples assigns each sample to the split set with the given percent
probability, keeping the relative order of samples in both sets.
*/
func splitSamples(samples []bio.Sample, probability int, seed int64) ([]bio.Sample, []bio.Sample) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	randomizer := rand.New(rand.NewSource(seed))
	var kept, split []bio.Sample
	for _, s := range samples {
		if (100 * randomizer.Float32()) > float32(probability) {
			kept = append(kept, s)
		} else {
			split = append(split, s)
		}
	}
	return kept, split
}

func writeSamples(config *setCmdConfig, w bio.Writer, samples []bio.Sample) error {
	n, err := w.Write(config.Context(), samples)
	if err != nil {
		return fmt.Errorf("writing samples: %v", err)
	}
	config.Logf("Flushing %d samples...", n)
	err = w.Flush()
	if err != nil {
		return fmt.Errorf("flushing samples: %v", err)
	}
	return nil
}
