// Package errors provides the coded error kinds reported by zinspector and
// their mapping to gRPC status.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unclassified failure.
	CodeUnknown Code = "UNKNOWN"

	// CodeNotFound is an unresolvable or expired identifier.
	CodeNotFound Code = "NOT_FOUND"

	// CodeValidation is bad caller input, such as an empty name.
	CodeValidation Code = "VALIDATION"

	// CodeStorage is a container file that is missing, corrupt or unwritable.
	CodeStorage Code = "STORAGE"

	// CodeMeshCodec is an unsupported or malformed geometry encoding.
	CodeMeshCodec Code = "MESH_CODEC"

	// CodeCanceled is a call abandoned by its caller.
	CodeCanceled Code = "CANCELED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeValidation, CodeMeshCodec:
		return codes.InvalidArgument
	case CodeStorage:
		return codes.FailedPrecondition
	case CodeCanceled:
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// FromGRPCCode is the client-side inverse of GRPCCode. InvalidArgument is
// ambiguous and resolves to CodeValidation unless status details say more.
func FromGRPCCode(c codes.Code) Code {
	switch c {
	case codes.NotFound:
		return CodeNotFound
	case codes.InvalidArgument:
		return CodeValidation
	case codes.FailedPrecondition:
		return CodeStorage
	case codes.Canceled, codes.DeadlineExceeded:
		return CodeCanceled
	default:
		return CodeUnknown
	}
}
