/*
Package mongo provides access to samples stored on a MongoDB database, as
documents of a samples collection keyed by feature name.
*/
package mongo

import (
	"context"
	"fmt"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature"
	"github.com/shopspring/decimal"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"
)

/*
Store reads and writes samples on the default database of a MongoDB
session.
*/
type Store struct {
	session *mgo.Session
}

/*
Dial takes a MongoDB connection URL and returns a Store working on the
URL's database, or an error if it fails to connect to it.
*/
func Dial(url string) (*Store, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return New(session), nil
}

// New takes a MongoDB session and returns a Store working on its default database.
func New(session *mgo.Session) *Store {
	return &Store{session}
}

/*
ReadSamples takes a context and a slice of features and returns the samples
in the samples collection ordered by _id, with their values for the
features, or an error. Documents without a value for any of the features
result in an error.

The order is stable for a given collection. It matches insertion order only
when the _id values are ObjectIds generated by a single client, as the ones
AddSamples writes.
*/
func (s *Store) ReadSamples(ctx context.Context, features []feature.Feature) ([]bio.Sample, error) {
	session := s.session.Copy()
	defer session.Close()
	iter := session.DB("").C(samplesCollectionName).Find(nil).Sort("_id").Iter()
	samples := []bio.Sample{}
	doc := bson.M{}
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		sample, err := bio.ParseSample(features, func(name string) (string, bool) {
			return bio.RawString(doc[name])
		})
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("parsing document %v: %v", doc["_id"], err)
		}
		samples = append(samples, sample)
		doc = bson.M{}
	}
	err := iter.Close()
	if err != nil {
		return nil, fmt.Errorf("reading samples from mongodb: %v", err)
	}
	return samples, nil
}

/*
AddSamples takes a context, a slice of features and a slice of samples and
inserts a document for each sample in the samples collection. Continuous
values are stored as doubles. It returns the number of samples inserted or
an error.
*/
func (s *Store) AddSamples(ctx context.Context, features []feature.Feature, samples []bio.Sample) (int, error) {
	session := s.session.Copy()
	defer session.Close()
	c := session.DB("").C(samplesCollectionName)
	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		values, err := bio.Values(sample, features)
		if err != nil {
			return i, err
		}
		doc := bson.M{}
		for j, f := range features {
			if d, ok := values[j].(decimal.Decimal); ok {
				doc[f.Name()] = d.InexactFloat64()
			} else {
				doc[f.Name()] = values[j]
			}
		}
		err = c.Insert(doc)
		if err != nil {
			return i, fmt.Errorf("inserting sample %d into mongodb: %v", i+1, err)
		}
	}
	return len(samples), nil
}

// Close closes the store's session.
func (s *Store) Close() {
	s.session.Close()
}

type writer struct {
	store    *Store
	features []feature.Feature
}

// NewWriter returns a bio.Writer that adds samples to the store.
func NewWriter(s *Store, features []feature.Feature) bio.Writer {
	return &writer{s, features}
}

func (w *writer) Write(ctx context.Context, samples []bio.Sample) (int, error) {
	return w.store.AddSamples(ctx, w.features, samples)
}

func (w *writer) Flush() error {
	return nil
}
