package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDownload wraps every failure to fetch or extract a dataset. Callers do
// not retry; the run terminates.
var ErrDownload = errors.New("dataset download failed")

// Fetcher materializes a dataset on local disk and returns the root of the
// extracted tree. The returned path is read-only from the caller's point of
// view and stays valid for the lifetime of the process.
type Fetcher interface {
	Fetch(ref string) (string, error)
}

// Ref is a dataset identifier of the form "owner/name".
type Ref struct {
	Owner string
	Name  string
}

func ParseRef(ref string) (Ref, error) {
	items := strings.Split(ref, "/")
	if len(items) != 2 || items[0] == "" || items[1] == "" {
		return Ref{}, fmt.Errorf("dataset ref must be owner/name, got %q", ref)
	}
	return Ref{Owner: items[0], Name: items[1]}, nil
}

func (ref Ref) String() string {
	return ref.Owner + "/" + ref.Name
}

func downloadError(err error) error {
	return fmt.Errorf("%w: %v", ErrDownload, err)
}
