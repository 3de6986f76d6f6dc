package v1

import (
	zerrors "github.com/fyrsmithlabs/zinspector/internal/errors"
)

// Code returns the domain code carried by an error returned from a Client
// call. Errors that are not gRPC statuses are classified by CodeOf.
func Code(err error) zerrors.Code {
	if err == nil {
		return ""
	}
	return zerrors.CodeOf(zerrors.FromGRPCStatus(err))
}

// IsNotFound reports whether the call failed because an id did not resolve.
func IsNotFound(err error) bool { return Code(err) == zerrors.CodeNotFound }

// IsValidation reports whether the request was rejected as invalid.
func IsValidation(err error) bool { return Code(err) == zerrors.CodeValidation }

// IsStorage reports whether a project file could not be read or written.
func IsStorage(err error) bool { return Code(err) == zerrors.CodeStorage }

// IsMeshCodec reports whether mesh geometry could not be encoded or decoded.
func IsMeshCodec(err error) bool { return Code(err) == zerrors.CodeMeshCodec }
