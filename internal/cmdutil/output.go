package cmdutil

import (
	"errors"

	oerrors "github.com/opmodel/autoload/internal/errors"
	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
	"github.com/opmodel/autoload/pkg/resolve"
)

// PrintError prints err under msg in a user-friendly format. Structured
// errors print their fields as key/value pairs; a DetailError prints its
// full block.
func PrintError(msg string, err error) {
	var (
		detailErr  *oerrors.DetailError
		resolveErr *resolve.ResolutionError
		fsErr      *autoload.FilesystemError
	)

	switch {
	case errors.As(err, &detailErr):
		output.Error(msg)
		output.Details(detailErr.Error())
	case errors.As(err, &resolveErr):
		output.Error(msg, "module", resolveErr.Path, "error", resolveErr.Err)
	case errors.As(err, &fsErr):
		output.Error(msg, "op", fsErr.Op, "path", fsErr.Path, "error", fsErr.Err)
	default:
		output.Error(msg, "error", err)
	}
}
