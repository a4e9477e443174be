package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// ErrEmptyDataset is returned when a source file loads but contains no rows.
// The dashboard halts the render pass rather than aggregating nothing.
var ErrEmptyDataset = errors.New("dataset is empty after load")

// Source names the dataset files. The Parquet file is authoritative; the
// CSV is a fallback for local setups that only have the raw export.
type Source struct {
	ParquetPath string
	CSVPath     string
}

// Load reads the restaurant dataset through an in-memory DuckDB instance.
// It tries the Parquet source first and falls back to CSV on any failure.
// The spurious exporter index column is dropped when present.
func Load(ctx context.Context, src Source, logger *slog.Logger) (*Dataset, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	if err := stage(ctx, db, src, logger); err != nil {
		return nil, err
	}

	ds, err := scan(ctx, db)
	if err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	logger.Info("dataset loaded", "rows", ds.Len(), "locations", len(ds.DistinctLocations()))
	return ds, nil
}

// stage materialises the source file into a restaurants table.
func stage(ctx context.Context, db *sql.DB, src Source, logger *slog.Logger) error {
	primaryErr := stageParquet(ctx, db, src.ParquetPath)
	if primaryErr == nil {
		return nil
	}

	logger.Warn("parquet source unreadable, falling back to csv",
		"parquet", src.ParquetPath, "error", primaryErr)

	if err := stageCSV(ctx, db, src.CSVPath); err != nil {
		return fmt.Errorf("failed to load both sources: parquet: %v; csv: %w", primaryErr, err)
	}
	return nil
}

func stageParquet(ctx context.Context, db *sql.DB, path string) error {
	if path == "" {
		return errors.New("no parquet path configured")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE restaurants AS SELECT * FROM read_parquet('%s')",
		escapePath(abs),
	)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to read parquet: %w", err)
	}
	return nil
}

func stageCSV(ctx context.Context, db *sql.DB, path string) error {
	if path == "" {
		return errors.New("no csv path configured")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	// read_csv_auto infers the schema, matching the parquet layout.
	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE restaurants AS SELECT * FROM read_csv_auto('%s', header=true)",
		escapePath(abs),
	)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}
	return nil
}

// scan pulls the analysable columns out of the staged table. Any extra
// columns in the source, including the exporter index column, are simply
// not selected.
func scan(ctx context.Context, db *sql.DB) (*Dataset, error) {
	cols, err := tableColumns(ctx, db)
	if err != nil {
		return nil, err
	}
	for _, required := range []string{ColLocation, ColRestType, ColOnlineOrder, ColBookTable, ColRate, ColCost} {
		if !cols[required] {
			return nil, fmt.Errorf("source is missing required column %q", required)
		}
	}
	if cols[artifactColumn] {
		// Keeps later SELECT * debugging sessions honest.
		if _, err := db.ExecContext(ctx,
			fmt.Sprintf(`ALTER TABLE restaurants DROP COLUMN "%s"`, artifactColumn)); err != nil {
			return nil, fmt.Errorf("failed to drop artifact column: %w", err)
		}
	}

	query := `
		SELECT
			location,
			rest_type,
			online_order,
			book_table,
			CAST(rate AS DOUBLE),
			CAST(cost AS DOUBLE)
		FROM restaurants
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var (
		locations, restTypes, onlineOrders, bookTables []string
		rates, costs                                   []float64
	)
	for rows.Next() {
		var location, restType, onlineOrder, bookTable sql.NullString
		var rate, cost sql.NullFloat64
		if err := rows.Scan(&location, &restType, &onlineOrder, &bookTable, &rate, &cost); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		locations = append(locations, location.String)
		restTypes = append(restTypes, restType.String)
		onlineOrders = append(onlineOrders, onlineOrder.String)
		bookTables = append(bookTables, bookTable.String)
		rates = append(rates, rate.Float64)
		costs = append(costs, cost.Float64)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}
	return New(locations, restTypes, onlineOrders, bookTables, rates, costs)
}

// tableColumns returns the staged table's column names via information_schema.
func tableColumns(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'restaurants'
		ORDER BY ordinal_position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata: %w", err)
	}
	return cols, nil
}

func escapePath(p string) string {
	return strings.ReplaceAll(p, "'", "''")
}
