package db

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jackc/pgx/v5"
)

// Statement is a statement text with its positional parameters.
type Statement struct {
	Text string
	Args []any
}

func (s Statement) String() string {
	if len(s.Args) == 0 {
		return s.Text
	}
	return fmt.Sprintf("%s %v", s.Text, s.Args)
}

// Result is a fully read result set.
type Result struct {
	// Fields are the column names in select-list order.
	Fields []string

	// Rows holds one map per row keyed by column name.
	Rows []map[string]any

	// RowCount is the number of rows returned or affected, from the command tag.
	RowCount int64

	// Command is the command tag reported by the server, e.g. "INSERT 0 1".
	Command string
}

// collect reads rows to completion and closes them.
func collect(rows pgx.Rows) (*Result, error) {
	fds := rows.FieldDescriptions()
	fields := make([]string, len(fds))
	for i, fd := range fds {
		fields[i] = fd.Name
	}

	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	tag := rows.CommandTag()
	return &Result{
		Fields:   fields,
		Rows:     records,
		RowCount: tag.RowsAffected(),
		Command:  tag.String(),
	}, nil
}

// First returns the first row, if any.
func (r *Result) First() (map[string]any, bool) {
	if r == nil || len(r.Rows) == 0 {
		return nil, false
	}
	return r.Rows[0], true
}

// Decode copies the rows into out, which must be a pointer to a slice of
// structs (or a pointer to a struct for the first row only). Columns are
// matched to fields through `db` struct tags.
func (r *Result) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "db",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build row decoder: %w", err)
	}

	var input any = r.Rows
	if !isSlicePtr(out) {
		row, ok := r.First()
		if !ok {
			return pgx.ErrNoRows
		}
		input = row
	}

	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("failed to decode rows: %w", err)
	}
	return nil
}

func isSlicePtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice
}
