package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrQuizNotFound means the requested name matches no discoverable bank.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrQuizLoad is matched by every *LoadError.
	ErrQuizLoad = errors.New("quiz could not be loaded")

	// ErrEmptyBank means the bank parsed fine but holds no questions.
	ErrEmptyBank = errors.New("quiz bank has no questions")
)

// LoadError indicates a bank file exists but could not be read or is
// structurally invalid.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrQuizLoad, e.Err} }

func loadErr(path string, err error) error {
	return &LoadError{Path: path, Err: err}
}
