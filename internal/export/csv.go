package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jobscrape-engine/internal/domain"
)

// Header is the fixed column order of the output file.
var Header = []string{"Job Title", "Company", "Location", "Date", "Description"}

func row(r domain.JobRecord) []string {
	return []string{r.Title, r.Company, r.Location, r.DatePosted, r.Description}
}

// Encode writes the header and one row per record, in order.
func Encode(w io.Writer, recs []domain.JobRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV replaces path with the encoded records. The file is built next to
// path and renamed into place, so a failure never leaves a partial file.
func WriteCSV(path string, recs []domain.JobRecord) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csv mkdir: %w", err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("csv create: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = Encode(f, recs); err != nil {
		return fmt.Errorf("csv write: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("csv sync: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("csv close: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("csv rename: %w", err)
	}
	return nil
}

// Decode reads a file produced by Encode. DetailURL is not stored in the CSV
// and comes back empty.
func Decode(r io.Reader) ([]domain.JobRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv: missing header")
	}
	if err != nil {
		return nil, err
	}
	for i, h := range Header {
		if head[i] != h {
			return nil, fmt.Errorf("csv: column %d is %q, want %q", i, head[i], h)
		}
	}

	var out []domain.JobRecord
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, domain.JobRecord{
			Title:       rec[0],
			Company:     rec[1],
			Location:    rec[2],
			DatePosted:  rec[3],
			Description: rec[4],
		})
	}
}

func ReadCSV(path string) ([]domain.JobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
