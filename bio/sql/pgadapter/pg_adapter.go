/*
Package pgadapter provides a bio/sql Adapter that works over a PostgreSQL
database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/cedar/feature"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	biosql "github.com/pbanos/cedar/bio/sql"
)

type dialect struct{}

/*
New takes a PostgreSQL database connection URL and returns an Adapter that
works on the database or an error if the URL cannot be used to connect.
*/
func New(url string) (*biosql.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	return biosql.NewAdapter(db, dialect{}), nil
}

func (dialect) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (dialect) IDColumnType() string {
	return "SERIAL PRIMARY KEY"
}

func (dialect) ColumnType(f feature.Feature) string {
	if _, ok := f.(*feature.ContinuousFeature); ok {
		return "DOUBLE PRECISION"
	}
	return "TEXT"
}
