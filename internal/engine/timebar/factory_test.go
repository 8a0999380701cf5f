package timebar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/timebar/internal/adapters/drawing"
	"go.trai.ch/timebar/internal/adapters/graph"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports/mocks"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.uber.org/mock/gomock"
)

func TestFactory_AppliesSharedAdapters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	sched := mocks.NewMockTickScheduler(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "timebar.filter").Return(context.Background(), span)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End()
	sched.EXPECT().Every(gomock.Any(), gomock.Any()).Return(func() {})

	f := timebar.NewFactory(logger, tracer, sched, drawing.NewSurface)
	g := graph.New(monthlyGraph(months(5)), domain.RendererSVG)
	tb := f.New(trendConfig(months(5)), g)

	require.NoError(t, tb.Init(context.Background()))
	g.Render()
	require.NoError(t, tb.Play())
	assert.True(t, tb.Playing())
}

func TestFactory_OptionsOverrideAdapters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(0)

	other := mocks.NewMockLogger(ctrl)
	other.EXPECT().Warn("time bar series is empty, skipping filter")

	f := timebar.NewFactory(logger, nil, nil, drawing.NewSurface)
	g := graph.New(domain.GraphSnapshot{}, domain.RendererCanvas)
	tb := f.New(domain.DefaultConfig(), g, timebar.WithLogger(other))

	require.NoError(t, tb.Init(context.Background()))
	g.Render()
	require.ErrorIs(t, tb.Play(), domain.ErrNoScheduler)
}
