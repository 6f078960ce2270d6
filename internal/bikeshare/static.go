package bikeshare

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func isLocalPath(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// rawData reads the full payload behind a URL or local file path.
func rawData(source string) ([]byte, error) {
	if isLocalPath(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local file: %w", err)
		}
		return b, nil
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading data: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, source)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return b, nil
}
