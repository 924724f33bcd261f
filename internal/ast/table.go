// Package ast defines the intermediate structures shared by the introspector,
// the relation inferencer and the Eloquent emitter. Every value is built fresh
// for one generation pass and never persisted.
package ast

import "strings"

// -----------------------------------------------------------------------------
// TableDef
// -----------------------------------------------------------------------------

// TableDef is the introspected shape of one table.
type TableDef struct {
	Name    string       // Table name as stored in the catalog
	Columns []*ColumnDef // Columns in ordinal order
}

// Column returns the column with the given name, or nil.
func (t *TableDef) Column(name string) *ColumnDef {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasColumn reports whether the table has a column with the given name.
func (t *TableDef) HasColumn(name string) bool {
	return t.Column(name) != nil
}

// -----------------------------------------------------------------------------
// ColumnDef
// -----------------------------------------------------------------------------

// ColumnDef describes a single column. Type is the raw catalog type string
// (e.g. "tinyint(1)", "timestamp without time zone", "DECIMAL(10,2)").
type ColumnDef struct {
	Name     string
	Type     string
	Nullable bool
}

// IsKeyLike reports whether the column name looks like a foreign key column.
func (c *ColumnDef) IsKeyLike() bool {
	return strings.Contains(c.Name, "_id")
}

// -----------------------------------------------------------------------------
// ForeignKeyDef
// -----------------------------------------------------------------------------

// ForeignKeyDef is a single-column edge Table.Column -> RefTable.RefColumn.
// Composite catalog constraints are reported as one edge per column pair.
type ForeignKeyDef struct {
	Table     string // Table holding the key
	Column    string // Key column on Table
	RefTable  string // Referenced table
	RefColumn string // Referenced column (usually "id")
}
