package main

import (
	"fmt"

	"github.com/pbanos/cedar"
	"github.com/pbanos/cedar/dataset"
	"github.com/pbanos/cedar/feature"
	"github.com/pbanos/cedar/feature/yaml"
	"github.com/pbanos/cedar/preprocessing"
	"github.com/pbanos/cedar/tree"
	"github.com/spf13/cobra"
)

/*
trainingCmdConfig holds the flags shared by the commands that grow a tree
before using it.
*/
type trainingCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	classFeature  string
	maxDBConns    int
}

type model struct {
	features []feature.Feature
	encoder  *preprocessing.Encoder
	training *dataset.Dataset
	root     tree.Node
}

func (tcc *trainingCmdConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(tcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(tcc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(tcc.classFeature), "class-feature", "c", "", "name of the feature the generated tree should predict (required)")
	cmd.PersistentFlags().IntVar(&(tcc.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time on SQLite3 inputs (defaults to 0: no limit)")
}

func (tcc *trainingCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tcc.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}

func (tcc *trainingCmdConfig) readFeatures() ([]feature.Feature, error) {
	tcc.Logf("Reading features from metadata at %s...", tcc.metadataInput)
	features, err := yaml.ReadFeaturesFromFile(tcc.metadataInput)
	if err != nil {
		return nil, err
	}
	tcc.Logf("Features from metadata read")
	return features, nil
}

/*
grow reads the features and training samples, fits an encoder on them and
grows a tree from the encoded training set.
*/
func (tcc *trainingCmdConfig) grow(features []feature.Feature) (*model, error) {
	samples, err := readSamples(tcc.Context(), tcc.logger, tcc.dataInput, tcc.maxDBConns, features)
	if err != nil {
		return nil, err
	}
	encoder, err := preprocessing.Fit(features, tcc.classFeature, samples)
	if err != nil {
		return nil, fmt.Errorf("preprocessing training set: %v", err)
	}
	for _, f := range encoder.Features() {
		if b := encoder.Bins(f.Name()); b != nil {
			tcc.Logf("Feature %s discretized into bins with edges %v", f.Name(), b)
		}
	}
	training, err := encoder.Dataset(samples)
	if err != nil {
		return nil, fmt.Errorf("preprocessing training set: %v", err)
	}
	tcc.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", training.Count(), len(encoder.Features()), tcc.classFeature)
	b := &cedar.Builder{Logger: tcc.logger}
	root := b.Build(training)
	tcc.Logf("Done")
	return &model{features, encoder, training, root}, nil
}

// columns returns the names of the features in the tree's rows, so that
// splits can be reported by name.
func (m *model) columns() []string {
	names := make([]string, 0, len(m.encoder.Features()))
	for _, f := range m.encoder.Features() {
		names = append(names, f.Name())
	}
	return names
}
