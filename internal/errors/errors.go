// Package errors defines the typed errors surfaced by the build pipeline and
// an error collector used to aggregate per-page failures into a single build
// report.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// PageError represents a failure while rendering or writing a single page
type PageError struct {
	Page      string
	Stage     string // "render", "layout", "write"
	Message   string
	Err       error
	Timestamp time.Time
}

// Error implements the error interface
func (pe *PageError) Error() string {
	if pe.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", pe.Page, pe.Stage, pe.Message, pe.Err)
	}
	return fmt.Sprintf("%s: %s: %s", pe.Page, pe.Stage, pe.Message)
}

// Unwrap returns the underlying error for errors.Is/As
func (pe *PageError) Unwrap() error {
	return pe.Err
}

// NewPageError creates a page error for the given stage
func NewPageError(page, stage, message string, err error) *PageError {
	return &PageError{
		Page:      page,
		Stage:     stage,
		Message:   message,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// ErrorCollector collects per-page errors during a build
type ErrorCollector struct {
	pageErrors []*PageError
	mutex      sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		pageErrors: make([]*PageError, 0),
	}
}

// Add adds a page error to the collector
func (ec *ErrorCollector) Add(err *PageError) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.pageErrors = append(ec.pageErrors, err)
}

// Errors returns a copy of all collected page errors
func (ec *ErrorCollector) Errors() []*PageError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]*PageError, len(ec.pageErrors))
	copy(result, ec.pageErrors)
	return result
}

// Count returns the number of collected errors
func (ec *ErrorCollector) Count() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.pageErrors)
}

// HasErrors reports whether any errors were collected
func (ec *ErrorCollector) HasErrors() bool {
	return ec.Count() > 0
}

// Summary formats the collected errors as a single build report
func (ec *ErrorCollector) Summary() string {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	if len(ec.pageErrors) == 0 {
		return "build completed without errors"
	}

	msg := fmt.Sprintf("build failed with %d error(s):", len(ec.pageErrors))
	for _, err := range ec.pageErrors {
		msg += "\n  " + err.Error()
	}
	return msg
}
