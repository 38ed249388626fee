package main

import (
	"fmt"
	"os"

	"github.com/pbanos/cedar/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*trainingCmdConfig
	testInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{trainingCmdConfig: &trainingCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree and test its performance against a test data set, or against the training set if none is given`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			features, err := config.readFeatures()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			m, err := config.grow(features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			testingSet := m.training
			if config.testInput != "" {
				samples, err := readSamples(config.Context(), config.logger, config.testInput, config.maxDBConns, features)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				testingSet, err = m.encoder.Dataset(samples)
				if err != nil {
					fmt.Fprintf(os.Stderr, "preprocessing testing set: %v\n", err)
					os.Exit(6)
				}
			} else {
				config.Logf("No testing set given, testing against the training set")
			}
			config.Logf("Testing tree against testset with %d samples...", testingSet.Count())
			successRate, noMatch := tree.Test(m.root, testingSet)
			config.Logf("Done")
			reportColor.Printf("%f success rate", successRate)
			if noMatch > 0 {
				noMatchColor.Printf(", failed to make a prediction for %d samples\n", noMatch)
			} else {
				fmt.Printf(", failed to make a prediction for %d samples\n", noMatch)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis connection URL with data to test the tree against (defaults to the training data)")
	return cmd
}
