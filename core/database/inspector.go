package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of an existing table.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
}

// TableExists reports whether the table is present.
func TableExists(db *gorm.DB, table string) bool {
	return db.Migrator().HasTable(table)
}

// GetTableColumns returns the columns of a table using the dialect's
// migrator. Names and types are lower-cased. A missing table returns an
// empty slice.
func GetTableColumns(db *gorm.DB, table string) ([]ColumnInfo, error) {
	if !TableExists(db, table) {
		return []ColumnInfo{}, nil
	}
	types, err := db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	columns := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		nullable, _ := ct.Nullable()
		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(ct.Name()),
			Type:     strings.ToLower(ct.DatabaseTypeName()),
			Nullable: nullable,
		})
	}
	return columns, nil
}

// MissingColumns returns the expected column names absent from the table.
func MissingColumns(db *gorm.DB, table string, expected []string) ([]string, error) {
	cols, err := GetTableColumns(db, table)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		have[c.Field] = struct{}{}
	}
	missing := []string{}
	for _, name := range expected {
		if _, ok := have[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
