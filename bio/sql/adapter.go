/*
Package sql provides access to samples stored on a SQL database, in a
table named samples with a column for each feature and an id column that
gives the samples their order.

Database specifics are provided by a Dialect; the sqlite3adapter and
pgadapter packages provide Adapters for SQLite3 and PostgreSQL.
*/
package sql

import (
	"bytes"
	"context"
	dbsql "database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature"
)

// SampleTable is the name of the table holding the samples.
const SampleTable = "samples"

/*
Dialect is an interface for the parts of the SQL used by an Adapter that
depend on the database engine.
*/
type Dialect interface {
	// Placeholder returns the placeholder for the n-th (starting at 1)
	// parameter of a statement.
	Placeholder(n int) string
	// IDColumnType returns the type declaration for the id column.
	IDColumnType() string
	// ColumnType returns the type declaration for the column of a feature.
	ColumnType(feature.Feature) string
}

/*
Adapter reads and writes samples on a database.
*/
type Adapter struct {
	db      *dbsql.DB
	dialect Dialect
}

/*
NewAdapter takes a database handle and a dialect and returns an Adapter that
works on the database.
*/
func NewAdapter(db *dbsql.DB, dialect Dialect) *Adapter {
	return &Adapter{db, dialect}
}

/*
ColumnName takes the name of a feature and returns the quoted name of its
column or an error if the name cannot be used for a column.
*/
func (a *Adapter) ColumnName(featureName string) (string, error) {
	if featureName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, featureName)
	}
	if featureName == "" || strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf(`feature name '%s' is empty or contains invalid character '"'`, featureName)
	}
	return fmt.Sprintf(`"%s"`, featureName), nil
}

/*
CreateSampleTable takes a context and a slice of features and ensures the
sample table exists, creating it with a column for each feature if it does
not.
*/
func (a *Adapter) CreateSampleTable(ctx context.Context, features []feature.Feature) error {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(", SampleTable))
	for _, f := range features {
		c, err := a.ColumnName(f.Name())
		if err != nil {
			return err
		}
		createStmtBuf.WriteString(fmt.Sprintf("%s %s NOT NULL, ", c, a.dialect.ColumnType(f)))
	}
	createStmtBuf.WriteString(fmt.Sprintf(`"id" %s)`, a.dialect.IDColumnType()))
	_, err := a.db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("ensuring samples table exists: %v", err)
	}
	return nil
}

/*
AddSamples takes a context, a slice of features and a slice of samples and
inserts the samples' values for the features on the sample table within a
transaction. It returns the number of samples inserted or an error.
*/
func (a *Adapter) AddSamples(ctx context.Context, features []feature.Feature, samples []bio.Sample) (int, error) {
	columns, err := a.columnNames(features)
	if err != nil {
		return 0, err
	}
	placeholders := make([]string, 0, len(columns))
	for i := range columns {
		placeholders = append(placeholders, a.dialect.Placeholder(i+1))
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", SampleTable, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting samples insertion: %v", err)
	}
	defer tx.Rollback()
	insertStmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("preparing insert command: %v", err)
	}
	defer insertStmt.Close()
	for i, s := range samples {
		values, err := bio.Values(s, features)
		if err != nil {
			return 0, err
		}
		_, err = insertStmt.ExecContext(ctx, values...)
		if err != nil {
			return 0, fmt.Errorf("inserting sample %d: %v", i+1, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing samples insertion: %v", err)
	}
	return len(samples), nil
}

/*
ReadSamples takes a context and a slice of features and returns the samples
on the sample table, in id order, with their values for the features, or an
error. NULL values are not supported and result in an error.
*/
func (a *Adapter) ReadSamples(ctx context.Context, features []feature.Feature) ([]bio.Sample, error) {
	columns, err := a.columnNames(features)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY "id"`, strings.Join(columns, ", "), SampleTable)
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	samples := []bio.Sample{}
	for rows.Next() {
		values := make([]dbsql.NullString, len(features))
		dest := make([]interface{}, len(features))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning sample %d: %v", len(samples)+1, err)
		}
		s, err := bio.ParseSample(features, func(name string) (string, bool) {
			_, i := feature.Find(features, name)
			return values[i].String, values[i].Valid
		})
		if err != nil {
			return nil, fmt.Errorf("parsing sample %d: %v", len(samples)+1, err)
		}
		samples = append(samples, s)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading samples: %v", err)
	}
	return samples, nil
}

// Close closes the underlying database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) columnNames(features []feature.Feature) ([]string, error) {
	columns := make([]string, 0, len(features))
	for _, f := range features {
		c, err := a.ColumnName(f.Name())
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}

type writer struct {
	adapter  *Adapter
	features []feature.Feature
}

/*
NewWriter takes a context, an Adapter and a slice of features, ensures the
sample table exists and returns a bio.Writer that inserts samples on it.
*/
func NewWriter(ctx context.Context, a *Adapter, features []feature.Feature) (bio.Writer, error) {
	err := a.CreateSampleTable(ctx, features)
	if err != nil {
		return nil, err
	}
	return &writer{a, features}, nil
}

func (w *writer) Write(ctx context.Context, samples []bio.Sample) (int, error) {
	return w.adapter.AddSamples(ctx, w.features, samples)
}

func (w *writer) Flush() error {
	return nil
}
