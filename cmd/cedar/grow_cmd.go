package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/cedar/tree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*trainingCmdConfig
	output string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{trainingCmdConfig: &trainingCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to classify samples by a certain feature and dump it.`,
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
			err = outputTree(config.output, m.root)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			successRate, _ := tree.Test(m.root, m.training)
			reportColor.Fprintf(os.Stderr, "tree with depth %d and %d leaves, %f success rate on the training set\n", tree.Depth(m.root), tree.Leaves(m.root), successRate)
			fmt.Fprintf(os.Stderr, "features by index: %s\n", featureLegend(m.columns()))
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the dump of the generated tree will be written (defaults to STDOUT)")
	return cmd
}

func outputTree(outputPath string, root tree.Node) error {
	f := os.Stdout
	if outputPath != "" {
		var err error
		f, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating %s: %v", outputPath, err)
		}
		defer f.Close()
	}
	err := tree.Dump(f, root)
	if err != nil {
		return fmt.Errorf("writing tree: %v", err)
	}
	return nil
}

func featureLegend(columns []string) string {
	entries := make([]string, 0, len(columns))
	for i, c := range columns {
		entries = append(entries, fmt.Sprintf("%d=%s", i, c))
	}
	return strings.Join(entries, ", ")
}
