// Package develop implements the stage that frames a single photo: read its
// metadata, decode it, paint the border and encode the result.
package develop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/painter"
	"github.com/user/instantfilm/pkg/pipeline"
	"github.com/user/instantfilm/pkg/ports"
)

// Failure classes of a develop run, checked with errors.Is.
var (
	ErrMetadata = errors.New("read metadata")
	ErrDecode   = errors.New("decode image")
	ErrPaint    = errors.New("paint border")
	ErrEncode   = errors.New("encode image")
)

// Stage frames one photo per Execute call. It is safe for concurrent use:
// every call builds its own painter and canvas from shared read-only resources.
type Stage struct {
	extractor ports.MetadataExtractor
	codec     ports.ImageCodec
	resources painter.Resources
	sink      ports.DebugSink
	logger    ports.Logger
}

// NewStage creates a new develop stage. A nil sink disables debug output.
func NewStage(
	extractor ports.MetadataExtractor,
	codec ports.ImageCodec,
	resources painter.Resources,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		extractor: extractor,
		codec:     codec,
		resources: resources,
		sink:      sink,
		logger:    logger.WithComponent("develop"),
	}
}

// Execute develops a single photo.
func (s *Stage) Execute(ctx context.Context, input pipeline.DevelopInput) (pipeline.DevelopResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.DevelopResult{}, err
	}

	md, err := s.extractor.Extract(input.Data)
	if err != nil {
		return pipeline.DevelopResult{}, fmt.Errorf("%w: %w", ErrMetadata, err)
	}
	s.saveMetadata(input.Name, md)

	img, err := s.codec.Decode(input.Data)
	if err != nil {
		return pipeline.DevelopResult{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	opts := input.Options
	p := painter.New(opts.Style, s.resources, opts.Position, opts.PadAround)
	s.logger.Debug("Developing %s with %s painter, anchor %s", input.Name, p.Name(), p.Anchor())

	c := canvas.FromImage(img)
	if err := p.Paint(c, md); err != nil {
		return pipeline.DevelopResult{}, fmt.Errorf("%w: %w", ErrPaint, err)
	}

	encodeOpts := ports.EncodeOptions{
		Format:  opts.Format,
		Quality: opts.Quality,
	}
	if opts.Format == ports.FormatJPEG {
		encodeOpts.ColorProfile = s.codec.ColorProfile(input.Data)
	}
	data, err := s.codec.Encode(c.Image(), encodeOpts)
	if err != nil {
		return pipeline.DevelopResult{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if s.sink != nil {
		if err := s.sink.SavePreview(input.Name, c.Image()); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	return pipeline.DevelopResult{
		Data:     data,
		Format:   opts.Format,
		Width:    c.Width(),
		Height:   c.Height(),
		Painter:  p.Name(),
		Metadata: md,
	}, nil
}

func (s *Stage) saveMetadata(name string, md film.Metadata) {
	if s.sink == nil {
		return
	}
	data, err := json.MarshalIndent(md, "", "  ")
	if err == nil {
		err = s.sink.SaveMetadataJSON(name, data)
	}
	if err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
}

// Ensure Stage implements pipeline.Developer
var _ pipeline.Developer = (*Stage)(nil)
