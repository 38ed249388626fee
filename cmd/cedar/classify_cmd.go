package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature"
	"github.com/pbanos/cedar/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*trainingCmdConfig
	point []string
}

type stderrValueRequester struct{}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{trainingCmdConfig: &trainingCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a sample",
		Long:  `Grow a tree and use it to classify a sample whose values are given with the point flag or answering questions about them`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			known, err := config.knownValues()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			features, err := config.readFeatures()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = config.validatePrompts(features, known)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			m, err := config.grow(features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			sample, err := bio.ReadSample(os.Stdin, m.encoder.Features(), stderrValueRequester{}, known)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading sample: %v\n", err)
				os.Exit(5)
			}
			point, err := m.encoder.Point(sample)
			if err != nil {
				fmt.Fprintf(os.Stderr, "preprocessing sample: %v\n", err)
				os.Exit(6)
			}
			config.Logf("Classifying point %v...", point)
			label, err := tree.Predict(m.root, point)
			if err != nil {
				noMatchColor.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			fmt.Println(label)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringArrayVarP(&(config.point), "point", "p", nil, "value of a feature for the sample to classify as name=value, can be repeated (values not given are requested on STDIN)")
	return cmd
}

func (ccc *classifyCmdConfig) knownValues() (map[string]string, error) {
	known := make(map[string]string, len(ccc.point))
	for _, p := range ccc.point {
		i := strings.Index(p, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid point value %q: expected name=value", p)
		}
		known[p[:i]] = p[i+1:]
	}
	return known, nil
}

/*
validatePrompts returns an error if the training set is read from STDIN and
some feature other than the class has no value given with the point flag,
since STDIN would be exhausted by the time its value is requested.
*/
func (ccc *classifyCmdConfig) validatePrompts(features []feature.Feature, known map[string]string) error {
	if ccc.dataInput != "" {
		return nil
	}
	for _, f := range features {
		if f.Name() == ccc.classFeature {
			continue
		}
		if _, ok := known[f.Name()]; !ok {
			return fmt.Errorf("no value for feature %s was given with the point flag and STDIN is used for the training set: set the input flag or give every feature value", f.Name())
		}
	}
	return nil
}

func (stderrValueRequester) RequestValueFor(f feature.Feature) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Fprintf(os.Stderr, "Please provide the sample's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Fprintf(os.Stderr, "Please provide the sample's %s:\n(valid values are real numbers)\n", f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

func (stderrValueRequester) RejectValueFor(f feature.Feature, value string) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Fprintf(os.Stderr, "%v is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Fprintf(os.Stderr, "%v is not a valid value for the sample's %s. Please provide a real number.\n", value, f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}
