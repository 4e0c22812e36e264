// Package materialize turns a BCNF decomposition into projected,
// duplicate-eliminated tables alongside the original relation. It is
// the storage-facing collaborator of the pure core: the core hands it
// attribute sets, it hands SQL to a database.
package materialize

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	normalize "github.com/vilterp/normalize/pkg"
)

// Table is one projected relation to derive from the original table.
type Table struct {
	Name string
	DDL  string
}

// Plan names each decomposed schema orig_1..orig_n and builds the
// statement that materializes it from the original table.
func Plan(orig string, schemas []normalize.AttributeSet) []Table {
	tables := make([]Table, len(schemas))
	for idx, schema := range schemas {
		name := fmt.Sprintf("%s_%d", orig, idx+1)
		cols := make([]string, 0, schema.Len())
		for _, attr := range schema.Sorted() {
			cols = append(cols, string(attr))
		}
		tables[idx] = Table{
			Name: name,
			DDL: fmt.Sprintf(
				"CREATE TABLE %s AS SELECT DISTINCT %s FROM %s",
				name, strings.Join(cols, ", "), orig,
			),
		}
	}
	return tables
}

// Exec runs a plan's DDL against db. The original table must already
// exist with all of the decomposition's attributes as columns.
func Exec(db *sql.DB, plan []Table) error {
	for _, table := range plan {
		if _, err := db.Exec(table.DDL); err != nil {
			return errors.Wrapf(err, "creating %s", table.Name)
		}
	}
	return nil
}
