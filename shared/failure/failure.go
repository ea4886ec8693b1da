package failure

import (
	"errors"
)

// Exit codes reported by the generator process.
const (
	CodeUnknown       = 1
	CodeInvalidConfig = 2
	CodeOutOfRange    = 3
	CodeExport        = 4
	CodeUpload        = 5
)

// Failure is a wrapper for error messages and the process exit code they map to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var EmptyDateTable = &Failure{Code: CodeOutOfRange, Message: "date table has too few rows to place a stay"}
var EmptyDimension = &Failure{Code: CodeOutOfRange, Message: "cannot sample from an empty dimension table"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// InvalidConfig returns a new Failure for configuration that cannot produce a dataset.
func InvalidConfig(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInvalidConfig,
			Message: err.Error(),
		}
	}

	return nil
}

// InvalidConfigFromString returns a new Failure for invalid configuration with message set from string.
func InvalidConfigFromString(msg string) error {
	return &Failure{
		Code:    CodeInvalidConfig,
		Message: msg,
	}
}

// OutOfRange returns a new Failure for a sampling index outside its table.
func OutOfRange(msg string) error {
	return &Failure{
		Code:    CodeOutOfRange,
		Message: msg,
	}
}

// ExportError returns a new Failure for a workbook that could not be written.
func ExportError(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeExport,
			Message: err.Error(),
		}
	}

	return nil
}

// UploadError returns a new Failure for a workbook that could not be uploaded.
func UploadError(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeUpload,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the exit code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeUnknown
}
