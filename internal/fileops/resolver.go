// Package fileops resolves caller-supplied paths against an ordered list of
// candidate locations and performs file deletion.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies a path operation failure.
type Kind int

const (
	// KindNotFound means no candidate location exists on disk.
	KindNotFound Kind = iota
	// KindRemoveFailed means the resolved file could not be removed.
	KindRemoveFailed
)

// String returns a short label for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindRemoveFailed:
		return "remove_failed"
	default:
		return "unknown"
	}
}

// PathError reports a failed resolution or deletion. It carries the original
// caller-supplied input and every candidate location tried, so the message is
// self-contained and the caller can debug a bad path without server logs.
type PathError struct {
	Kind       Kind
	Input      string
	Candidates []string
	Err        error
}

func (e *PathError) Error() string {
	tried := strings.Join(e.Candidates, ", ")
	if e.Kind == KindNotFound {
		return fmt.Sprintf("File not found: %s (tried: %s)", e.Input, tried)
	}
	return fmt.Sprintf("Failed to delete file %s: %v (tried: %s)", e.Input, e.Err, tried)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Resolver derives candidate filesystem locations for a caller-supplied path
// and deletes the first one that exists. Resolution is a pure function of the
// input, the working directory, and the fallback root, so repeated calls with
// the same input always target the same file.
type Resolver struct {
	workDir      string
	fallbackRoot string
}

// NewResolver creates a Resolver. workDir is the directory relative inputs
// are resolved against. fallbackRoot is a last-resort base for relative
// inputs; empty disables it.
func NewResolver(workDir, fallbackRoot string) *Resolver {
	return &Resolver{
		workDir:      workDir,
		fallbackRoot: fallbackRoot,
	}
}

// Candidates returns the ordered locations tried for input: the raw input,
// the input joined to the working directory, and the input joined to the
// fallback root (when configured). Absolute inputs repeat verbatim in each
// slot. Duplicates are kept so error reports show every location in try
// order.
func (r *Resolver) Candidates(input string) []string {
	candidates := []string{input}
	if filepath.IsAbs(input) {
		candidates = append(candidates, input)
		if r.fallbackRoot != "" {
			candidates = append(candidates, input)
		}
		return candidates
	}
	candidates = append(candidates, filepath.Join(r.workDir, input))
	if r.fallbackRoot != "" {
		candidates = append(candidates, filepath.Join(r.fallbackRoot, input))
	}
	return candidates
}

// Resolve returns the first candidate that exists on disk, or a PathError of
// kind KindNotFound listing everything tried.
func (r *Resolver) Resolve(input string) (string, error) {
	candidates := r.Candidates(input)
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", &PathError{
		Kind:       KindNotFound,
		Input:      input,
		Candidates: candidates,
	}
}

// Delete resolves input and removes the file it names. Directories are
// rejected; the tool deletes single files only. There is an accepted race
// between the existence check and the remove call: if another process wins,
// the remove error is what gets reported.
func (r *Resolver) Delete(input string) error {
	target, err := r.Resolve(input)
	if err != nil {
		return err
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return &PathError{
			Kind:       KindRemoveFailed,
			Input:      input,
			Candidates: r.Candidates(input),
			Err:        fmt.Errorf("%s is a directory, not a file", target),
		}
	}
	if err := os.Remove(target); err != nil {
		return &PathError{
			Kind:       KindRemoveFailed,
			Input:      input,
			Candidates: r.Candidates(input),
			Err:        err,
		}
	}
	return nil
}
