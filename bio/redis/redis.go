/*
Package redis provides access to samples stored on a redis list, each
element of the list being a JSON object with the values of a sample keyed
by feature name.
*/
package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature"
	"github.com/shopspring/decimal"
	redisv5 "gopkg.in/redis.v5"
)

// DefaultKey is the key of the list holding samples when none is given.
const DefaultKey = "samples"

/*
Store reads samples from and appends them to a redis list.
*/
type Store struct {
	rc  *redisv5.Client
	key string
}

/*
Dial takes a URL like redis://:password@host:port/db?key=name and returns
a Store working on the list at the given key of the given database, or an
error if the URL is invalid or the server cannot be reached. The database
defaults to 0 and the key to DefaultKey.
*/
func Dial(rawurl string) (*Store, error) {
	opts, key, err := parseURL(rawurl)
	if err != nil {
		return nil, err
	}
	rc := redisv5.NewClient(opts)
	_, err = rc.Ping().Result()
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", opts.Addr, err)
	}
	return New(rc, key), nil
}

// New returns a Store working on the list at the given key with the given client.
func New(rc *redisv5.Client, key string) *Store {
	return &Store{rc, key}
}

func parseURL(rawurl string) (*redisv5.Options, string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, "", fmt.Errorf("parsing redis url: %v", err)
	}
	if u.Scheme != "redis" {
		return nil, "", fmt.Errorf("parsing redis url: unsupported scheme %q", u.Scheme)
	}
	opts := &redisv5.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = u.Host + ":6379"
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	db := strings.Trim(u.Path, "/")
	if db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, "", fmt.Errorf("parsing redis url: invalid database %q", db)
		}
	}
	key := u.Query().Get("key")
	if key == "" {
		key = DefaultKey
	}
	return opts, key, nil
}

/*
ReadSamples takes a context and a slice of features and returns the samples
on the store's list, in list order, with their values for the features, or
an error.
*/
func (s *Store) ReadSamples(ctx context.Context, features []feature.Feature) ([]bio.Sample, error) {
	elements, err := s.rc.LRange(s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading samples from redis list %s: %v", s.key, err)
	}
	samples := make([]bio.Sample, 0, len(elements))
	for i, e := range elements {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		doc := make(map[string]interface{})
		dec := json.NewDecoder(strings.NewReader(e))
		dec.UseNumber()
		err = dec.Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decoding element %d of redis list %s: %v", i, s.key, err)
		}
		sample, err := bio.ParseSample(features, func(name string) (string, bool) {
			return bio.RawString(doc[name])
		})
		if err != nil {
			return nil, fmt.Errorf("parsing element %d of redis list %s: %v", i, s.key, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

/*
AddSamples takes a context, a slice of features and a slice of samples and
appends the samples to the store's list as JSON objects, continuous values
encoded as numbers. It returns the number of samples appended or an error.
*/
func (s *Store) AddSamples(ctx context.Context, features []feature.Feature, samples []bio.Sample) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	elements := make([]interface{}, 0, len(samples))
	for i, sample := range samples {
		data, err := encodeSample(sample, features)
		if err != nil {
			return 0, fmt.Errorf("encoding sample %d: %v", i+1, err)
		}
		elements = append(elements, data)
	}
	_, err := s.rc.RPush(s.key, elements...).Result()
	if err != nil {
		return 0, fmt.Errorf("appending samples to redis list %s: %v", s.key, err)
	}
	return len(samples), nil
}

func encodeSample(sample bio.Sample, features []feature.Feature) (string, error) {
	values, err := bio.Values(sample, features)
	if err != nil {
		return "", err
	}
	doc := make(map[string]interface{}, len(features))
	for i, f := range features {
		if d, ok := values[i].(decimal.Decimal); ok {
			doc[f.Name()] = json.Number(d.String())
		} else {
			doc[f.Name()] = values[i]
		}
	}
	buf := &bytes.Buffer{}
	err = json.NewEncoder(buf).Encode(doc)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// Close closes the store's client.
func (s *Store) Close() error {
	return s.rc.Close()
}

type writer struct {
	store    *Store
	features []feature.Feature
}

// NewWriter returns a bio.Writer that appends samples to the store's list.
func NewWriter(s *Store, features []feature.Feature) bio.Writer {
	return &writer{s, features}
}

func (w *writer) Write(ctx context.Context, samples []bio.Sample) (int, error) {
	return w.store.AddSamples(ctx, w.features, samples)
}

func (w *writer) Flush() error {
	return nil
}
