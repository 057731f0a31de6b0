package hcl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/graphprune/internal/graph"
)

func TestWriter_Write(t *testing.T) {
	g := graph.New(
		graph.Node{Name: "a", Op: "Add", Inputs: []string{"b:0", "^c"}},
		graph.Node{Name: "d", Device: "/cpu:0"},
	)

	out, err := NewWriter().Write(context.Background(), g)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, `node "a" {`)
	assert.Contains(t, text, `["b:0", "^c"]`)
	assert.Contains(t, text, `"/cpu:0"`)
	assert.Less(t, strings.Index(text, `node "a"`), strings.Index(text, `node "d"`))
}

func TestWriter_RoundTrip(t *testing.T) {
	g := graph.New(
		graph.Node{Name: "a", Op: "Add", Inputs: []string{"b:0", "^c"}},
		graph.Node{Name: "b", Inputs: []string{"d:1"}},
		graph.Node{Name: "c", Inputs: []string{"d:1"}},
		graph.Node{Name: "d", Op: "Const", Device: "/cpu:0"},
	)

	out, err := NewWriter().Write(context.Background(), g)
	require.NoError(t, err)

	path := writeHCL(t, t.TempDir(), "pruned.hcl", string(out))
	doc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, g.Equal(doc.Graph), "round trip changed graph:\n%s", out)
}

func TestWriter_EmptyGraph(t *testing.T) {
	out, err := NewWriter().Write(context.Background(), graph.New())
	require.NoError(t, err)
	assert.Empty(t, out)
}
