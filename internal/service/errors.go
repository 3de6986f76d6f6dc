package service

import (
	"context"
	"errors"

	"github.com/fyrsmithlabs/zinspector/internal/container"
	zerrors "github.com/fyrsmithlabs/zinspector/internal/errors"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

// classify turns an error from the lower packages into a coded error. The
// original error stays reachable through Unwrap.
//
// Codec errors are checked before storage errors so a corrupt payload inside
// a readable file is reported as a codec failure.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var coded *zerrors.Error
	if errors.As(err, &coded) {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return zerrors.Wrap(zerrors.CodeCanceled, op+" canceled", err)
	case errors.Is(err, registry.ErrNotFound), errors.Is(err, model.ErrWrongKind):
		return zerrors.Wrap(zerrors.CodeNotFound, op, err)
	case errors.Is(err, model.ErrInvalidName), errors.Is(err, registry.ErrInvalidID):
		return zerrors.Wrap(zerrors.CodeValidation, op, err)
	case errors.Is(err, mesh.ErrCodec), errors.Is(err, mesh.ErrInvalid):
		return zerrors.Wrap(zerrors.CodeMeshCodec, op, err)
	case errors.Is(err, container.ErrStorage):
		return zerrors.Wrap(zerrors.CodeStorage, op, err)
	}
	return zerrors.Wrap(zerrors.CodeUnknown, op, err)
}
