// 每个站点一行，列为url、content
// content为多个文本按separator拼接成的一个字段
package filestorage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrewyi/scraper/src/entity"
)

var (
	ErrBadHeader = errors.New("unexpected csv header")
	ErrBadRow    = errors.New("unexpected csv row")
)

var header = []string{"url", "content"}

type CSVFileStorage struct {
	location  string
	separator string
}

func NewCSVFileStorage(location string, separator string) FileStorage {
	return &CSVFileStorage{
		location:  location,
		separator: separator,
	}
}

func (s *CSVFileStorage) Store(results []entity.ExtractionResult) error {
	if dir := filepath.Dir(s.location); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	f, err := os.Create(s.location)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.URL, strings.Join(r.Content, s.separator)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func (s *CSVFileStorage) Load() ([]entity.ExtractionResult, error) {
	f, err := os.Open(s.location)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) != len(header) || rows[0][0] != header[0] || rows[0][1] != header[1] {
		return nil, fmt.Errorf("%w in %s", ErrBadHeader, s.location)
	}

	results := make([]entity.ExtractionResult, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: %s line %d has %d fields", ErrBadRow, s.location, i+2, len(row))
		}
		content := []string{}
		if row[1] != "" {
			content = strings.Split(row[1], s.separator)
		}
		results = append(results, entity.ExtractionResult{URL: row[0], Content: content})
	}
	return results, nil
}
