package pipeline

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/matzehuels/mleader/pkg/cache"
	"github.com/matzehuels/mleader/pkg/dxf"
	"github.com/matzehuels/mleader/pkg/document"
	mlerrors "github.com/matzehuels/mleader/pkg/errors"
	"github.com/matzehuels/mleader/pkg/store"
)

// ErrDuplicateLeaderIndex is returned when two roots of one document share
// a leader index.
var ErrDuplicateLeaderIndex = errors.New("duplicate leader index")

// ErrLeaderNotFound is returned by Duplicate when no root has the
// requested leader index.
var ErrLeaderNotFound = errors.New("leader not found")

// Classify wraps err in an *errors.Error whose code reflects the sentinel
// errors in its chain. Errors that already carry a code are returned as is.
func Classify(err error, format string, args ...any) error {
	return classify(err, mlerrors.ErrCodeInternal, format, args...)
}

// classify is Classify with the code to use when no sentinel matches.
func classify(err error, fallback mlerrors.Code, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if mlerrors.GetCode(err) != "" {
		return err
	}
	code := codeOf(err)
	if code == "" {
		code = fallback
	}
	return mlerrors.Wrap(code, err, format, args...)
}

func codeOf(err error) mlerrors.Code {
	var (
		syntaxErr *dxf.SyntaxError
		jsonErr   *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, dxf.ErrUnresolvedHandle):
		return mlerrors.ErrCodeUnresolvedReference
	case errors.Is(err, document.ErrUnknownFormat):
		return mlerrors.ErrCodeUnsupported
	case errors.Is(err, store.ErrNotFound), errors.Is(err, ErrLeaderNotFound):
		return mlerrors.ErrCodeNotFound
	case errors.Is(err, store.ErrInvalidID), errors.Is(err, ErrDuplicateLeaderIndex):
		return mlerrors.ErrCodeInvalidInput
	case errors.Is(err, fs.ErrNotExist):
		return mlerrors.ErrCodeFileNotFound
	case errors.Is(err, cache.ErrNetwork):
		return mlerrors.ErrCodeNetwork
	case errors.As(err, &syntaxErr), errors.As(err, &jsonErr), errors.As(err, &typeErr):
		return mlerrors.ErrCodeInvalidFormat
	}
	return ""
}
