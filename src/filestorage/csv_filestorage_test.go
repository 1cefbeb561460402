package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewyi/scraper/src/entity"
)

func TestCSVRoundTrip(t *testing.T) {
	location := filepath.Join(t.TempDir(), "out", "results.csv")
	s := NewCSVFileStorage(location, "\n")

	var results []entity.ExtractionResult
	for i := 0; i < 5; i++ {
		results = append(results, entity.ExtractionResult{
			URL:     fmt.Sprintf("https://site-%d.test/page?q=%d", i, i),
			Content: []string{fmt.Sprintf("title, with comma %d", i), `quoted "text"`},
		})
	}
	results = append(results, entity.ExtractionResult{URL: "https://empty.test", Content: []string{}})

	require.NoError(t, s.Store(results))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, len(results))
	for i := range results {
		require.Equal(t, results[i].URL, loaded[i].URL)
		require.Equal(t, results[i].Content, loaded[i].Content)
	}
}

func TestCSVHeader(t *testing.T) {
	location := filepath.Join(t.TempDir(), "results.csv")
	s := NewCSVFileStorage(location, " | ")
	require.NoError(t, s.Store([]entity.ExtractionResult{
		{URL: "https://a.test", Content: []string{"A", "B"}},
	}))

	raw, err := os.ReadFile(location)
	require.NoError(t, err)
	require.Equal(t, "url,content\nhttps://a.test,A | B\n", string(raw))
}

func TestCSVLoadBadHeader(t *testing.T) {
	location := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(location, []byte("a,b\n1,2\n"), 0o644))

	_, err := NewCSVFileStorage(location, "\n").Load()
	require.ErrorIs(t, err, ErrBadHeader)

	require.NoError(t, os.WriteFile(location, []byte("url\nhttps://a\n"), 0o644))
	_, err = NewCSVFileStorage(location, "\n").Load()
	require.ErrorIs(t, err, ErrBadHeader)

	require.NoError(t, os.WriteFile(location, []byte(""), 0o644))
	_, err = NewCSVFileStorage(location, "\n").Load()
	require.ErrorIs(t, err, ErrBadHeader)
}

func TestCSVLoadBadRow(t *testing.T) {
	location := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(location, []byte("url,content\nhttps://a.test\n"), 0o644))

	_, err := NewCSVFileStorage(location, "\n").Load()
	require.ErrorIs(t, err, ErrBadRow)
}
