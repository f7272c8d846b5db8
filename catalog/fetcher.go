package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FetchRows retrieves the catalog CSV from url and parses it into ordered
// rows keyed by normalized header names. The first line is the header; dots
// in header cells are rewritten to underscores so they can be used as stable
// field keys. Empty lines are skipped. Any network or parse failure returns
// an error and no rows; there are no partial results.
func FetchRows(ctx context.Context, url string) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog CSV request for %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog CSV from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog CSV from %s: unexpected status %d", url, resp.StatusCode)
	}

	rows, err := ParseRows(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV from %s: %w", url, err)
	}
	return rows, nil
}

// ParseRows parses CSV content into header-keyed rows
func ParseRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog CSV header: %w", err)
	}
	for i, cell := range header {
		header[i] = strings.ReplaceAll(strings.TrimSpace(cell), ".", "_")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog CSV record: %w", err)
		}
		if isEmptyRecord(record) {
			continue
		}

		row := make(Row, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
