package mesh

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrCodec is the sentinel matched by every CodecError.
var ErrCodec = errors.New("mesh codec error")

// ErrUnsupported is wrapped by codec errors for formats without a codec.
var ErrUnsupported = errors.New("unsupported format")

// Format tags a binary mesh encoding.
type Format string

// Supported formats.
const (
	FormatSTL Format = "stl"
	FormatOBJ Format = "obj"
	FormatGLB Format = "glb"
)

// ParseFormat normalises a format tag.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatSTL, FormatOBJ, FormatGLB:
		return f, nil
	}
	return "", &CodecError{Op: "parse format", Format: Format(s), Err: ErrUnsupported}
}

func (f Format) String() string { return string(f) }

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", &CodecError{Op: "infer format", Err: fmt.Errorf("no extension on %q", filepath.Base(path))}
	}
	return ParseFormat(ext)
}

// CodecError describes a failed encode or decode.
type CodecError struct {
	Op     string
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("mesh %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("mesh %s %s: %v", e.Op, e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *CodecError) Unwrap() error { return e.Err }

// Is matches ErrCodec.
func (e *CodecError) Is(target error) bool { return target == ErrCodec }

type decodeFunc func(data []byte) (*Mesh, error)

type encodeFunc func(m *Mesh) ([]byte, error)

var decoders = map[Format]decodeFunc{
	FormatSTL: decodeSTL,
	FormatOBJ: decodeOBJ,
}

var encoders = map[Format]encodeFunc{
	FormatSTL: encodeSTL,
	FormatOBJ: encodeOBJ,
	FormatGLB: encodeGLB,
}

// Decode parses data in the given format. The result is validated.
func Decode(data []byte, format Format) (*Mesh, error) {
	dec, ok := decoders[format]
	if !ok {
		return nil, &CodecError{Op: "decode", Format: format, Err: ErrUnsupported}
	}
	if len(data) == 0 {
		return nil, &CodecError{Op: "decode", Format: format, Err: errors.New("empty payload")}
	}
	m, err := dec(data)
	if err != nil {
		return nil, &CodecError{Op: "decode", Format: format, Err: err}
	}
	if err := m.Validate(); err != nil {
		return nil, &CodecError{Op: "decode", Format: format, Err: err}
	}
	return m, nil
}

// Encode serialises m in the given format.
func Encode(m *Mesh, format Format) ([]byte, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, &CodecError{Op: "encode", Format: format, Err: ErrUnsupported}
	}
	if err := m.Validate(); err != nil {
		return nil, &CodecError{Op: "encode", Format: format, Err: err}
	}
	data, err := enc(m)
	if err != nil {
		return nil, &CodecError{Op: "encode", Format: format, Err: err}
	}
	return data, nil
}

// CanDecode reports whether Decode supports format.
func CanDecode(format Format) bool {
	_, ok := decoders[format]
	return ok
}

// CanEncode reports whether Encode supports format.
func CanEncode(format Format) bool {
	_, ok := encoders[format]
	return ok
}

// ReadFile loads and decodes a mesh file, inferring the format from its
// extension. A missing or unreadable file is reported as a codec error
// wrapping the os error.
func ReadFile(path string) (*Mesh, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	if !CanDecode(format) {
		return nil, format, &CodecError{Op: "read", Format: format, Err: ErrUnsupported}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, format, &CodecError{Op: "read", Format: format, Err: err}
	}
	m, err := Decode(data, format)
	if err != nil {
		return nil, format, err
	}
	return m, format, nil
}
