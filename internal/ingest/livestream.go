package ingest

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type liveStreamFile struct {
	LiveStreamURLs map[string]string `yaml:"liveStreamUrls"`
}

// LoadLiveStreams reads the serie number to livestream URL map. A missing file yields an empty map.
// JSON is a subset of YAML, so both formats are accepted.
func LoadLiveStreams(path string) (map[int]string, error) {
	urls := map[int]string{}
	if path == "" {
		return urls, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return urls, nil
		}
		return urls, fmt.Errorf("failed to read livestream config: %w", err)
	}

	var file liveStreamFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return urls, fmt.Errorf("failed to parse livestream config %s: %w", path, err)
	}

	for key, url := range file.LiveStreamURLs {
		n, err := strconv.Atoi(key)
		if err != nil {
			return map[int]string{}, fmt.Errorf("livestream config: invalid serie number %q", key)
		}
		urls[n] = url
	}
	return urls, nil
}
