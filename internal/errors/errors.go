package errors

import (
	"context"
	stderrors "errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the error domain attached to status details.
const Domain = "github.com/fyrsmithlabs/zinspector"

// Error is the domain error type.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Caller-facing message
	Cause   error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks against a code.
var (
	ErrNotFound   = &Error{Code: CodeNotFound}
	ErrValidation = &Error{Code: CodeValidation}
	ErrStorage    = &Error{Code: CodeStorage}
	ErrMeshCodec  = &Error{Code: CodeMeshCodec}
	ErrCanceled   = &Error{Code: CodeCanceled}
)

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As is errors.As from the standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// CodeOf returns the code of the outermost domain error in err's chain.
// Context cancellation is reported as CodeCanceled even when unwrapped.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return CodeCanceled
	}
	return CodeUnknown
}

// ToGRPCStatus converts err to a gRPC status error carrying an ErrorInfo
// detail whose reason is the domain code. Errors that already are a status
// pass through unchanged.
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !stderrors.As(err, &e) {
		if _, ok := status.FromError(err); ok {
			return err
		}
	}

	code := CodeOf(err)
	st := status.New(code.GRPCCode(), err.Error())
	withDetails, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(code),
		Domain: Domain,
	})
	if derr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCStatus rebuilds a domain error from a status error received by a
// client. The ErrorInfo reason wins over the status code when present.
func FromGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	code := FromGRPCCode(st.Code())
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			code = Code(info.GetReason())
		}
	}
	return &Error{Code: code, Message: st.Message(), Cause: err}
}
