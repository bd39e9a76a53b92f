// Package gifplay provides the high-level animation playback API.
package gifplay

import (
	"context"

	"github.com/user/gifplay/pkg/cache"
	"github.com/user/gifplay/pkg/compose"
	"github.com/user/gifplay/pkg/pipeline"
	"github.com/user/gifplay/pkg/playback"
	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/stages/assemble"
	"github.com/user/gifplay/pkg/stages/decode"
	"github.com/user/gifplay/pkg/timeline"
)

// Player owns the shared animation cache and the decode/assemble pipeline,
// and hands out playback controllers bound to cached timelines. One player
// is typically created per host context and shared by all of its viewers.
type Player struct {
	decodeStage   pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	cache         *cache.Cache
	logger        ports.Logger
}

// New wires a player from its collaborators.
func New(decoder ports.AnimationDecoder, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Player {
	compositor := compose.New(renderer, logger)
	return &Player{
		decodeStage:   decode.NewStage(decoder, logger),
		assembleStage: assemble.NewStage(compositor, sink, logger),
		cache:         cache.New(logger),
		logger:        logger,
	}
}

// Cache exposes the player's animation cache.
func (p *Player) Cache() *cache.Cache {
	return p.cache
}

// Load returns the fully built timeline for identity, building it on first
// request. data must be the encoded image bytes the identity canonically
// refers to. Concurrent loads of the same identity share one build; a
// failed build is not cached and a later call retries.
func (p *Player) Load(ctx context.Context, identity string, data []byte) (*timeline.Timeline, error) {
	return p.cache.GetOrBuild(identity, func() (*timeline.Timeline, error) {
		return p.build(ctx, identity, data)
	})
}

// build runs the decode and assemble stages for one image.
func (p *Player) build(ctx context.Context, identity string, data []byte) (*timeline.Timeline, error) {
	decoded, err := p.decodeStage.Execute(ctx, pipeline.DecodeInput{Identity: identity, Data: data})
	if err != nil {
		return nil, err
	}

	anim := decoded.Animation
	assembled, err := p.assembleStage.Execute(ctx, pipeline.AssembleInput{
		CanvasSize:   pipeline.Dimension{Width: anim.CanvasWidth, Height: anim.CanvasHeight},
		Frames:       anim.Frames,
		LoopCount:    anim.LoopCount,
		HasLoopCount: anim.HasLoopCount,
		Extensions:   anim.Extensions,
	})
	if err != nil {
		return nil, err
	}
	return assembled.Timeline, nil
}

// OpenController loads the timeline for identity, registers consumer on the
// cache entry and returns a controller that detaches the consumer when it
// is disposed.
func (p *Player) OpenController(ctx context.Context, identity string, data []byte, consumer cache.Handle, opts playback.Options) (*playback.Controller, error) {
	tl, err := p.Load(ctx, identity, data)
	if err != nil {
		return nil, err
	}

	p.cache.Attach(identity, consumer)
	ctrl, err := playback.New(tl, opts)
	if err != nil {
		p.cache.Detach(identity, consumer)
		return nil, err
	}
	ctrl.OnDispose(func() {
		p.cache.Detach(identity, consumer)
	})
	return ctrl, nil
}
