package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/qsgal/internal/compiler"
	"github.com/roach88/qsgal/internal/emit"
)

// LoadError represents an error that occurred while reading a source file.
type LoadError struct {
	Code    string
	Message string
	Path    string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrCode returns the error code.
func (e *LoadError) ErrCode() string {
	return e.Code
}

// ReadSource reads the whole source file at path and returns it in NFC form.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &LoadError{Code: ErrCodeNotFound, Message: err.Error(), Path: path}
	}
	if err != nil {
		return "", &LoadError{Code: ErrCodeGeneric, Message: err.Error(), Path: path}
	}
	return norm.NFC.String(string(data)), nil
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeLedger      = "E009" // Build ledger error
)

// errorCode returns the taxonomy code carried by err, E001 when it has none.
func errorCode(err error) string {
	if code := compiler.ErrorCode(err); code != "" {
		return code
	}
	return ErrCodeGeneric
}

// describe returns the message of err without its leading code.
func describe(err error) string {
	var parseErr *compiler.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("line %d: %s", parseErr.Line, parseErr.Message)
		}
		return parseErr.Message
	}
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Message
	}
	code := errorCode(err)
	return strings.TrimPrefix(err.Error(), code+": ")
}

// errorDetails returns the structured context of err for the error
// envelope, nil when there is none.
func errorDetails(err error) any {
	var parseErr *compiler.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		return map[string]any{"line": parseErr.Line}
	}
	var targetErr *emit.UnknownTargetError
	if errors.As(err, &targetErr) {
		return map[string]any{"target": targetErr.Target, "targets": emit.Targets}
	}
	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Path != "" {
		return map[string]any{"path": loadErr.Path}
	}
	return nil
}

// commandError reports err through the formatter and returns the exit error
// for a failed command.
func commandError(f *OutputFormatter, err error) error {
	_ = f.Error(errorCode(err), describe(err), errorDetails(err))
	return &ExitError{Code: ExitCommandError, Message: "command failed", Err: err, Reported: true}
}
