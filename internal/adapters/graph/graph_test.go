package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/timebar/internal/adapters/graph"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

var (
	_ ports.GraphDataSource = (*graph.Graph)(nil)
	_ ports.EventEmitter    = (*graph.Graph)(nil)
)

func TestGraph_SaveReturnsCopy(t *testing.T) {
	g := graph.New(domain.GraphSnapshot{Nodes: []domain.Node{{ID: "a", Date: "2020"}}}, domain.RendererSVG)

	saved := g.Save()
	saved.Nodes[0].ID = "changed"

	assert.Equal(t, "a", g.Save().Nodes[0].ID)
	assert.Equal(t, domain.RendererSVG, g.RendererKind())
}

func TestGraph_ChangeData(t *testing.T) {
	g := graph.New(domain.GraphSnapshot{}, domain.RendererCanvas)

	var got []domain.GraphSnapshot
	g.On(graph.EventAfterChangeData, func(payload any) {
		got = append(got, payload.(domain.GraphSnapshot))
	})

	next := domain.GraphSnapshot{Nodes: []domain.Node{{ID: "b", Date: "2021"}}, Edges: []domain.Edge{}}
	g.ChangeData(next)

	require.Len(t, got, 1)
	assert.Equal(t, next, got[0])
	assert.Equal(t, next, g.Save())
	assert.Equal(t, 1, g.Changes())
}

func TestGraph_EventBus(t *testing.T) {
	g := graph.New(domain.GraphSnapshot{}, domain.RendererCanvas)

	var order []string
	g.On(domain.EventAfterRender, func(any) { order = append(order, "first") })
	g.On(domain.EventAfterRender, func(any) { order = append(order, "second") })

	g.Render()
	assert.Equal(t, []string{"first", "second"}, order)

	g.Off(domain.EventAfterRender)
	g.Render()
	assert.Len(t, order, 2)
}

func TestGraph_HandlerMayCallBack(t *testing.T) {
	g := graph.New(domain.GraphSnapshot{Nodes: []domain.Node{{ID: "a"}}}, domain.RendererCanvas)

	g.On(domain.EventAfterRender, func(any) {
		g.ChangeData(domain.GraphSnapshot{})
	})
	g.Render()

	assert.Empty(t, g.Save().Nodes)
}
