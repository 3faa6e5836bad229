package commands

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// BatchDocument is the on-disk shape of a split batch: an optional separator
// override and the list of input strings. Null entries decode to nil so the
// splitter can reject them as hard input-validation failures instead of
// silently treating them as empty strings.
//
// YAML is a superset of JSON, so both .yaml and .json batch files decode
// through the same path.
type BatchDocument struct {
	Sep     *string   `yaml:"sep"`
	Strings []*string `yaml:"strings"`
}

// LoadBatchFile reads and decodes a batch document from path, or from stdin
// when path is StdinFilePath.
func LoadBatchFile(path string) (*BatchDocument, error) {
	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading batch file: %w", err)
		}
	}

	var doc BatchDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding batch file: %w", err)
	}
	if doc.Strings == nil {
		return nil, fmt.Errorf("batch file has no 'strings' list")
	}
	return &doc, nil
}
