package document

import (
	"fmt"
	"io"
	"os"
)

// StdinName is the file argument that selects standard input.
const StdinName = "-"

// ReadSource reads the named file, or all of stdin when name is StdinName.
func ReadSource(name string, stdin io.Reader) ([]byte, error) {
	if name == StdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}
