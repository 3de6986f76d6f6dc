package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
	"github.com/fyrsmithlabs/zinspector/internal/stream"
)

// GetMeshData exports the mesh behind id and returns its chunk stream. An
// empty format selects the configured wire encoding.
//
// The mesh is resolved and encoded before GetMeshData returns, so a bad id
// or a codec failure yields an error and no stream. The caller must Close
// the stream or drain it.
func (s *Service) GetMeshData(ctx context.Context, id registry.ID, format mesh.Format) (*stream.Stream, error) {
	ctx, span := s.start(ctx, "GetMeshData", id)
	defer span.End()

	if format == "" {
		format = s.config.StreamFormat
	} else {
		f, err := mesh.ParseFormat(format.String())
		if err != nil {
			return nil, s.fail(ctx, span, "GetMeshData", err)
		}
		format = f
	}
	span.SetAttributes(attribute.String("format", format.String()))

	m, err := s.tree.Mesh(id)
	if err != nil {
		return nil, s.fail(ctx, span, "GetMeshData", err)
	}
	st, err := stream.Export(ctx, m.Geometry(), format, s.config.ChunkSize)
	if err != nil {
		return nil, s.fail(ctx, span, "GetMeshData", err)
	}

	span.SetAttributes(
		attribute.Int("stream.bytes", st.Size()),
		attribute.Int("stream.chunks", st.Len()),
	)
	s.logger.Debug(ctx, "mesh exported",
		zap.String("format", st.Format()),
		zap.Int("bytes", st.Size()),
		zap.Int("chunks", st.Len()),
	)
	return st, nil
}
