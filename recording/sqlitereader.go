package recording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
)

// QueryParams narrows a table read.
type QueryParams struct {
	// Where is a WHERE clause without the keyword, e.g. "Topic = ?".
	Where string

	// Args fills the placeholders in Where.
	Args []any

	// Limit caps the number of returned rows; 0 means no limit.
	Limit int

	// Offset skips rows, for pagination.
	Offset int

	// OrderBy is an ORDER BY clause without the keywords.
	OrderBy string
}

// SQLiteReader reads entries back out of a recording file.
type SQLiteReader struct {
	*sql.DB

	typeMap map[string]reflect.Type
}

// NewSQLiteReader opens path.sqlite3 for reading.
func NewSQLiteReader(path string) *SQLiteReader {
	db, err := sql.Open("sqlite3", path+".sqlite3")
	if err != nil {
		panic(err)
	}

	return &SQLiteReader{
		DB:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

// MapTable declares the struct type rows of a table unmarshal into. A
// table must be mapped before it can be queried.
func (r *SQLiteReader) MapTable(tableName string, sampleEntry any) {
	mustBeFlatStruct(sampleEntry)
	r.typeMap[tableName] = reflect.TypeOf(sampleEntry)
}

// ListTables returns the mapped table names.
func (r *SQLiteReader) ListTables() []string {
	tables := make([]string, 0, len(r.typeMap))
	for name := range r.typeMap {
		tables = append(tables, name)
	}

	return tables
}

// Query reads rows of a mapped table. It returns the selected entries and
// the total row count ignoring Limit/Offset.
func (r *SQLiteReader) Query(
	ctx context.Context,
	tableName string,
	params QueryParams,
) (results []any, totalCount int, err error) {
	structType, ok := r.typeMap[tableName]
	if !ok {
		return nil, 0, fmt.Errorf("recording: table %s is not mapped", tableName)
	}

	query := "SELECT * FROM " + tableName
	if params.Where != "" {
		query += " WHERE " + params.Where
	}

	if params.OrderBy != "" {
		query += " ORDER BY " + params.OrderBy
	}

	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", params.Limit)
		if params.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", params.Offset)
		}
	}

	totalCount, err = r.queryTotalCount(ctx, tableName, params)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.QueryContext(ctx, query, params.Args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		entry := reflect.New(structType).Elem()

		fields := make([]any, structType.NumField())
		for i := range fields {
			fields[i] = entry.Field(i).Addr().Interface()
		}

		if err := rows.Scan(fields...); err != nil {
			return nil, 0, err
		}

		results = append(results, entry.Interface())
	}

	return results, totalCount, rows.Err()
}

func (r *SQLiteReader) queryTotalCount(
	ctx context.Context,
	tableName string,
	params QueryParams,
) (int, error) {
	query := "SELECT COUNT(*) FROM " + tableName
	if params.Where != "" {
		query += " WHERE " + params.Where
	}

	var count int
	err := r.QueryRowContext(ctx, query, params.Args...).Scan(&count)

	return count, err
}
