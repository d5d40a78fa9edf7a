package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	eventschema "github.com/abhisek/mcqgen/ent/schema"
)

const (
	tableLLMEvents = "llm_request_events"
	tableRuns      = "generation_runs"
)

// tables returns the migration targets. The event tables are read from the
// ent schemas, so column names, defaults and indexes have one definition.
func tables() ([]*sqlschema.Table, error) {
	events, err := entTable(tableLLMEvents, "llmrequestevent", eventschema.LLMRequestEvent{})
	if err != nil {
		return nil, err
	}
	runs, err := entTable(tableRuns, "generationrun", eventschema.GenerationRun{})
	if err != nil {
		return nil, err
	}
	seq := sqlschema.NewTable(tableSequence).
		AddPrimary(&sqlschema.Column{Name: "id", Type: field.TypeInt}).
		AddColumn(&sqlschema.Column{Name: "next_val", Type: field.TypeInt64})

	return []*sqlschema.Table{seq, events, runs}, nil
}

// entTable converts an ent schema and its mixins into a table. A schema
// without an "id" field gets an auto-increment integer key, as ent does.
func entTable(name, indexPrefix string, s ent.Interface) (*sqlschema.Table, error) {
	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	var id *sqlschema.Column
	var columns []*sqlschema.Column
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		c := &sqlschema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Default:  d.Default,
			Size:     int64(d.Size),
		}
		if d.StorageKey != "" {
			c.Name = d.StorageKey
		}
		if c.Name == "id" {
			c.Unique = false
			id = c
			continue
		}
		columns = append(columns, c)
	}
	if id == nil {
		id = &sqlschema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	}

	t := sqlschema.NewTable(name).AddPrimary(id)
	for _, c := range columns {
		t.AddColumn(c)
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		idxName := d.StorageKey
		if idxName == "" {
			idxName = indexPrefix + "_" + strings.Join(d.Fields, "_")
		}
		t.AddIndex(idxName, d.Unique, d.Fields)
	}
	return t, nil
}

// migrate creates every table and index that does not exist yet and seeds
// the sequence row.
func migrate(ctx context.Context, db *sql.DB) error {
	ts, err := tables()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	m, err := sqlschema.NewMigrate(entsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	if err := m.Create(ctx, ts...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSequence).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}
