package recording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	// SQLite driver.
	_ "github.com/mattn/go-sqlite3"
)

type table struct {
	structType reflect.Type
	entries    []any
}

// SQLiteWriter records entries into a local SQLite file.
type SQLiteWriter struct {
	*sql.DB
	statement *sql.Stmt

	dbName     string
	tables     map[string]*table
	batchSize  int
	entryCount int
}

func newSQLiteWriter(cfg RecorderConfig) *SQLiteWriter {
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = 100000
	}

	w := &SQLiteWriter{
		dbName:    cfg.Path,
		batchSize: batchSize,
		tables:    make(map[string]*table),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

// init establishes the database connection. It refuses to clobber an
// existing file; recordings are append-only artifacts.
func (w *SQLiteWriter) init() {
	if w.dbName == "" {
		w.dbName = "kata_drill_results_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("recording: file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Recording drill results to %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	// Open is lazy; ping so the file exists before the next writer's
	// existence check can run.
	if err := db.Ping(); err != nil {
		panic(err)
	}

	w.DB = db
}

// Filename returns the path of the backing database file.
func (w *SQLiteWriter) Filename() string {
	return w.dbName + ".sqlite3"
}

// CreateTable creates a table shaped like sampleEntry.
func (w *SQLiteWriter) CreateTable(tableName string, sampleEntry any) {
	mustBeFlatStruct(sampleEntry)

	fields := strings.Join(structs.Names(sampleEntry), ", \n\t")
	w.mustExecute(`CREATE TABLE ` + tableName + ` (` + "\n\t" + fields + "\n" + `);`)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

// InsertData buffers one entry, flushing when the batch is full.
func (w *SQLiteWriter) InsertData(tableName string, entry any) {
	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("recording: table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.structType {
		panic(fmt.Sprintf("recording: entry type %T does not match table %s",
			entry, tableName))
	}

	t.entries = append(t.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

// ListTables returns the names of all created tables.
func (w *SQLiteWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	return tables
}

// Flush writes all buffered entries inside one transaction.
func (w *SQLiteWriter) Flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range w.tables {
		if len(t.entries) == 0 {
			continue
		}

		w.prepareStatement(tableName, t.entries[0])

		for _, entry := range t.entries {
			if _, err := w.statement.Exec(fieldValues(entry)...); err != nil {
				panic(err)
			}
		}

		t.entries = nil

		w.statement.Close()
		w.statement = nil
	}

	w.entryCount = 0
}

// Close flushes and closes the database.
func (w *SQLiteWriter) Close() error {
	w.Flush()
	return w.DB.Close()
}

func (w *SQLiteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		panic(fmt.Errorf("recording: executing %q: %w", query, err))
	}

	return res
}

func (w *SQLiteWriter) prepareStatement(tableName string, sampleEntry any) {
	placeholders := structs.Names(sampleEntry)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt, err := w.Prepare("INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		panic(err)
	}

	w.statement = stmt
}
