package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed.
type ErrorKind int

const (
	// NetworkError means the request could not be completed.
	NetworkError ErrorKind = iota + 1
	// HTTPError means the upstream answered with a non-200 status.
	HTTPError
	// StructureError means an expected element was missing from the page.
	StructureError
)

var (
	ErrNetwork   = errors.New("network error")
	ErrHTTP      = errors.New("http error")
	ErrStructure = errors.New("structure error")
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkError:
		return "network"
	case HTTPError:
		return "http"
	case StructureError:
		return "structure"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NetworkError:
		return ErrNetwork
	case HTTPError:
		return ErrHTTP
	case StructureError:
		return ErrStructure
	default:
		return nil
	}
}

// FetchError is returned by FetchPrices and ExtractPrices.
// Use errors.Is with ErrNetwork, ErrHTTP or ErrStructure to test the kind.
type FetchError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == HTTPError:
		return fmt.Sprintf("unexpected status code: %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	default:
		return e.Detail
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func structureError(detail string) *FetchError {
	return &FetchError{Kind: StructureError, Detail: detail}
}
