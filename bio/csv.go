package bio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/cedar/feature"
)

// undefinedValue is the CSV cell content for a missing value.
const undefinedValue = "?"

type csvWriter struct {
	features []feature.Feature
	w        *csv.Writer
	count    int
}

/*
ReadCSV takes an io.Reader for a CSV stream and a slice of features and
returns the samples parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of the names
of the features in the given slice. A last column with a name that matches no
feature is ignored. The rest of the rows should consist of valid values for the
features; missing values (empty cells or the '?' string) are not supported.
*/
func ReadCSV(reader io.Reader, features []feature.Feature) ([]Sample, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columns, err := parseCSVHeader(header, featureSliceToMap(features))
	if err != nil {
		return nil, err
	}
	samples := []Sample{}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		s, err := ParseSample(features, func(name string) (string, bool) {
			i, ok := columns[name]
			if !ok || row[i] == "" || row[i] == undefinedValue {
				return "", false
			}
			return row[i], true
		})
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

/*
ReadCSVFromFilePath takes a filepath string and a slice of features, opens
the file to which the filepath points to and uses ReadCSV to return the
samples read from it or an error. An empty filepath reads from STDIN.
*/
func ReadCSVFromFilePath(filepath string, features []feature.Feature) ([]Sample, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening CSV file: %v", err)
		}
		defer f.Close()
	}
	samples, err := ReadCSV(f, features)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return samples, err
}

/*
NewCSVWriter takes an io.Writer and a slice of features and returns a
Writer that writes samples on it in CSV format, after a header with the
names of the features.
*/
func NewCSVWriter(writer io.Writer, features []feature.Feature) (Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, 0, len(features))
	for _, f := range features {
		record = append(record, f.Name())
	}
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{features: features, w: w}, nil
}

func (cw *csvWriter) Write(ctx context.Context, samples []Sample) (int, error) {
	for n, s := range samples {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		values, err := Values(s, cw.features)
		if err != nil {
			return n, err
		}
		record := make([]string, len(values))
		for j, v := range values {
			record[j] = fmt.Sprintf("%v", v)
		}
		err = cw.w.Write(record)
		if err != nil {
			return n, fmt.Errorf("writing CSV row for sample %d: %v", cw.count+1, err)
		}
		cw.count++
	}
	return len(samples), nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func parseCSVHeader(header []string, features map[string]feature.Feature) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		if _, ok := features[name]; ok {
			columns[name] = i
		} else if i != len(header)-1 {
			return nil, fmt.Errorf("parsing header: reference to unknown feature %s", name)
		}
	}
	for name := range features {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("parsing header: no column for feature %s", name)
		}
	}
	return columns, nil
}

func featureSliceToMap(features []feature.Feature) map[string]feature.Feature {
	result := make(map[string]feature.Feature)
	for _, f := range features {
		result[f.Name()] = f
	}
	return result
}
