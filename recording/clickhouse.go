package recording

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/tebeka/atexit"
)

// ClickHouseRecorder records entries into a ClickHouse database, for teams
// that keep drill history on a shared server.
type ClickHouseRecorder struct {
	conn clickhouse.Conn
	mu   sync.Mutex

	tables     map[string]*table
	batchSize  int
	entryCount int
}

func newClickHouseRecorder(cfg RecorderConfig) *ClickHouseRecorder {
	options, err := clickHouseOptions(cfg)
	if err != nil {
		panic(err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		panic(fmt.Errorf("recording: connecting to ClickHouse: %w", err))
	}

	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = 100000
	}

	r := &ClickHouseRecorder{
		conn:      conn,
		tables:    make(map[string]*table),
		batchSize: batchSize,
	}

	atexit.Register(func() { r.Flush() })

	return r
}

func clickHouseOptions(cfg RecorderConfig) (*clickhouse.Options, error) {
	if cfg.ConnStr != "" {
		options, err := clickhouse.ParseDSN(cfg.ConnStr)
		if err != nil {
			return nil, fmt.Errorf("recording: parsing ClickHouse DSN: %w", err)
		}

		return options, nil
	}

	if cfg.Host == "" || cfg.Port == 0 || cfg.Database == "" {
		return nil, fmt.Errorf(
			"recording: ClickHouse needs a DSN or host, port, and database")
	}

	return &clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	}, nil
}

// CreateTable creates a MergeTree table shaped like sampleEntry.
func (r *ClickHouseRecorder) CreateTable(tableName string, sampleEntry any) {
	mustBeFlatStruct(sampleEntry)

	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf(sampleEntry)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		columns = append(columns,
			fmt.Sprintf("%s %s", f.Name, clickHouseType(f.Type.Kind())))
	}

	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s) ENGINE = MergeTree() ORDER BY tuple()",
		tableName, strings.Join(columns, ", "))

	if err := r.conn.Exec(context.Background(), query); err != nil {
		panic(fmt.Errorf("recording: creating table %s: %w", tableName, err))
	}

	r.tables[tableName] = &table{
		structType: t,
		entries:    []any{},
	}
}

// InsertData buffers one entry, flushing when the batch is full.
func (r *ClickHouseRecorder) InsertData(tableName string, entry any) {
	r.mu.Lock()

	t, exists := r.tables[tableName]
	if !exists {
		r.mu.Unlock()
		panic(fmt.Sprintf("recording: table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.structType {
		r.mu.Unlock()
		panic(fmt.Sprintf("recording: entry type %T does not match table %s",
			entry, tableName))
	}

	t.entries = append(t.entries, entry)
	r.entryCount++

	full := r.entryCount >= r.batchSize
	r.mu.Unlock()

	if full {
		r.Flush()
	}
}

// ListTables returns the names of all created tables.
func (r *ClickHouseRecorder) ListTables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tables := make([]string, 0, len(r.tables))
	for name := range r.tables {
		tables = append(tables, name)
	}

	return tables
}

// Flush sends all buffered entries as per-table batches.
func (r *ClickHouseRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entryCount == 0 {
		return
	}

	ctx := context.Background()

	for tableName, t := range r.tables {
		if len(t.entries) == 0 {
			continue
		}

		batch, err := r.conn.PrepareBatch(ctx, "INSERT INTO "+tableName)
		if err != nil {
			panic(fmt.Errorf("recording: preparing batch for %s: %w",
				tableName, err))
		}

		for _, entry := range t.entries {
			if err := batch.Append(fieldValues(entry)...); err != nil {
				panic(fmt.Errorf("recording: appending to %s: %w", tableName, err))
			}
		}

		if err := batch.Send(); err != nil {
			panic(fmt.Errorf("recording: sending batch for %s: %w", tableName, err))
		}

		t.entries = nil
	}

	r.entryCount = 0
}

// Close flushes and closes the connection.
func (r *ClickHouseRecorder) Close() error {
	r.Flush()
	return r.conn.Close()
}

func clickHouseType(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "Bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "Int64"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "UInt64"
	case reflect.Float32, reflect.Float64:
		return "Float64"
	case reflect.String:
		return "String"
	default:
		panic(fmt.Sprintf("recording: unsupported kind %s", kind))
	}
}
