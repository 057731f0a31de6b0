package prune

import (
	"fmt"

	"github.com/vk/graphprune/internal/config"
	"github.com/vk/graphprune/internal/graph"
	"github.com/vk/graphprune/internal/nodeid"
)

// Prune returns the nodes of g that the fetches transitively depend on, in
// their original order. A fetch keeps its whole producing node regardless
// of the output index it names. g is not modified and the result shares no
// memory with it.
func Prune(fetches []config.Fetch, g *graph.Graph) (*graph.Graph, error) {
	roots := make([]string, 0, len(fetches))
	for _, f := range fetches {
		roots = append(roots, f.ID.NodeName)
	}
	return prune(roots, nil, g)
}

// PruneConfig is like Prune over cfg.Fetches, but stops at fed tensors: a
// data edge whose source tensor is overridden by one of cfg.Feeds is not
// followed, so producers needed only through fed tensors are dropped.
// Control edges are always followed. A nil cfg fetches nothing.
func PruneConfig(cfg *config.Config, g *graph.Graph) (*graph.Graph, error) {
	if cfg == nil {
		return prune(nil, nil, g)
	}
	return prune(cfg.FetchNodeNames(), cfg.FedTensors(), g)
}

func prune(roots []string, fed map[config.TensorID]struct{}, g *graph.Graph) (*graph.Graph, error) {
	index := g.Index()

	// reachable is keyed by node position; for duplicated names only the
	// position recorded in index is ever marked.
	reachable := make([]bool, g.Len())
	queue := make([]int, 0, len(roots))

	for _, name := range roots {
		pos, ok := index[name]
		if !ok {
			return nil, missingf("node %s needed for fetch not found", name)
		}
		if !reachable[pos] {
			reachable[pos] = true
			queue = append(queue, pos)
		}
	}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		n := &g.Nodes[pos]

		for _, raw := range n.Inputs {
			ref, err := nodeid.Parse(raw)
			if err != nil {
				return nil, &Error{
					Kind:  ErrMissingNode,
					Msg:   fmt.Sprintf("node %s has unresolvable input %q", n.Name, raw),
					cause: err,
				}
			}
			if !ref.IsControl() && isFed(fed, ref) {
				continue
			}

			dep, ok := index[ref.Name]
			if !ok {
				return nil, missingf("node %s needed by %s not found", ref.Name, n.Name)
			}
			if !reachable[dep] {
				reachable[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	out := &graph.Graph{Nodes: make([]graph.Node, 0, g.Len())}
	for i := range g.Len() {
		n := g.Nodes[i]
		if reachable[index[n.Name]] {
			out.Nodes = append(out.Nodes, n.Clone())
		}
	}
	return out, nil
}

func isFed(fed map[config.TensorID]struct{}, ref nodeid.Ref) bool {
	if len(fed) == 0 {
		return false
	}
	_, ok := fed[config.TensorID{NodeName: ref.Name, OutputIndex: ref.Index}]
	return ok
}
