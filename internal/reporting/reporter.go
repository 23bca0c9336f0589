// File: internal/reporting/reporter.go
package reporting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// IsStdout reports whether an output path designates standard output.
func IsStdout(outputPath string) bool {
	return outputPath == "" || outputPath == "-" || outputPath == "stdout"
}

// open returns the destination for outputPath, creating parent directories for
// file outputs.
func open(outputPath string) (io.WriteCloser, error) {
	if IsStdout(outputPath) {
		return &nopWriteCloser{stdout}, nil
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return f, nil
}

// WritePayload writes an encoded payload to outputPath, followed by a newline.
func WritePayload(outputPath string, data []byte) (err error) {
	w, err := open(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output %s: %w", outputPath, cerr)
		}
	}()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}
