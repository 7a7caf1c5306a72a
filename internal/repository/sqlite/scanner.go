package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanRecord scans a single record from a row selected as (id, text).
func ScanRecord(scanner Scanner) (*Record, error) {
	record := &Record{}
	if err := scanner.Scan(&record.ID, &record.Text); err != nil {
		return nil, err
	}
	return record, nil
}

// ScanRecords scans every remaining row. The result is never nil.
func ScanRecords(rows Rows) ([]*Record, error) {
	records := make([]*Record, 0)
	for rows.Next() {
		record, err := ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
