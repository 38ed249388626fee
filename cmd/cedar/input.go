package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/bio/mongo"
	"github.com/pbanos/cedar/bio/redis"
	biosql "github.com/pbanos/cedar/bio/sql"
	"github.com/pbanos/cedar/bio/sql/pgadapter"
	"github.com/pbanos/cedar/bio/sql/sqlite3adapter"
	"github.com/pbanos/cedar/feature"
)

type sourceKind int

const (
	csvSource sourceKind = iota
	sqlite3Source
	postgreSQLSource
	mongoSource
	redisSource
)

/*
kindOf takes the location of a set of samples and returns the kind of source
holding them: PostgreSQL, MongoDB and Redis URLs are recognized by their
scheme, files with a .db extension are SQLite3 databases and everything else
is a CSV file (or STDIN/STDOUT when empty).
*/
func kindOf(location string) sourceKind {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgreSQLSource
	case strings.HasPrefix(location, "mongodb://"):
		return mongoSource
	case strings.HasPrefix(location, "redis://"):
		return redisSource
	case strings.HasSuffix(location, ".db"):
		return sqlite3Source
	}
	return csvSource
}

/*
readSamples takes a context, the location of a set of samples, a limit to
the DB connections to open and a slice of features and returns the samples
read from the location or an error.
*/
func readSamples(ctx context.Context, l logger, location string, maxDBConns int, features []feature.Feature) ([]bio.Sample, error) {
	var samples []bio.Sample
	var err error
	switch kindOf(location) {
	case postgreSQLSource:
		l.Logf("Creating PostgreSQL adapter for url %s to read samples...", location)
		var a *biosql.Adapter
		a, err = pgadapter.New(location)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		samples, err = a.ReadSamples(ctx, features)
	case sqlite3Source:
		l.Logf("Creating SQLite3 adapter for file %s to read samples...", location)
		var a *biosql.Adapter
		a, err = sqlite3adapter.New(location, maxDBConns)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		samples, err = a.ReadSamples(ctx, features)
	case mongoSource:
		l.Logf("Connecting to MongoDB at %s to read samples...", location)
		var s *mongo.Store
		s, err = mongo.Dial(location)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		samples, err = s.ReadSamples(ctx, features)
	case redisSource:
		l.Logf("Connecting to redis at %s to read samples...", location)
		var s *redis.Store
		s, err = redis.Dial(location)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		samples, err = s.ReadSamples(ctx, features)
	default:
		if location == "" {
			l.Logf("Reading samples from STDIN...")
		} else {
			l.Logf("Opening %s to read samples...", location)
		}
		samples, err = bio.ReadCSVFromFilePath(location, features)
	}
	if err != nil {
		return nil, fmt.Errorf("reading samples: %v", err)
	}
	l.Logf("Read %d samples", len(samples))
	return samples, nil
}

/*
openWriter takes a context, the location to write a set of samples to, a
limit to the DB connections to open and a slice of features and returns a
bio.Writer for the location along with a function to release it, or an
error.
*/
func openWriter(ctx context.Context, l logger, location string, maxDBConns int, features []feature.Feature) (bio.Writer, func() error, error) {
	switch kindOf(location) {
	case postgreSQLSource:
		l.Logf("Creating PostgreSQL adapter for url %s to write samples...", location)
		a, err := pgadapter.New(location)
		if err != nil {
			return nil, nil, err
		}
		w, err := biosql.NewWriter(ctx, a, features)
		if err != nil {
			a.Close()
			return nil, nil, err
		}
		return w, a.Close, nil
	case sqlite3Source:
		l.Logf("Creating SQLite3 adapter for file %s to write samples...", location)
		a, err := sqlite3adapter.New(location, maxDBConns)
		if err != nil {
			return nil, nil, err
		}
		w, err := biosql.NewWriter(ctx, a, features)
		if err != nil {
			a.Close()
			return nil, nil, err
		}
		return w, a.Close, nil
	case mongoSource:
		l.Logf("Connecting to MongoDB at %s to write samples...", location)
		s, err := mongo.Dial(location)
		if err != nil {
			return nil, nil, err
		}
		return mongo.NewWriter(s, features), func() error { s.Close(); return nil }, nil
	case redisSource:
		l.Logf("Connecting to redis at %s to write samples...", location)
		s, err := redis.Dial(location)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewWriter(s, features), s.Close, nil
	}
	f := os.Stdout
	closer := func() error { return nil }
	if location != "" {
		l.Logf("Creating %s to write samples...", location)
		var err error
		f, err = os.Create(location)
		if err != nil {
			return nil, nil, fmt.Errorf("creating %s: %v", location, err)
		}
		closer = f.Close
	} else {
		l.Logf("Using STDOUT to write samples...")
	}
	w, err := bio.NewCSVWriter(f, features)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return w, closer, nil
}
