package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes every table as CSV in foreign-key order, rows ordered by
// primary key. Each table starts with a "# name" record and a header. Numbers
// are printed in their shortest exact form, so two datasets are identical
// exactly when their dumps are byte-equal.
func (r reader) Dump(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, t := range allTables {
		if err := r.dumpTable(ctx, cw, t); err != nil {
			return fmt.Errorf("dumping %s: %w", t.name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r reader) dumpTable(ctx context.Context, cw *csv.Writer, t table) error {
	if err := cw.Write([]string{"# " + t.name}); err != nil {
		return err
	}
	if err := cw.Write(t.columns); err != nil {
		return err
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(t.columns, ", "), t.name, t.key)
	rows, err := r.q.query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	values := make([]any, len(t.columns))
	dest := make([]any, len(t.columns))
	for i := range values {
		dest[i] = &values[i]
	}
	record := make([]string, len(t.columns))
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		for i, v := range values {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return rows.Err()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(x)
	}
}
