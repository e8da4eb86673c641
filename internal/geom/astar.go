package geom

import "container/heap"

// MaxPathSteps caps node expansions per search so one query cannot stall a
// tick on a pathological map.
const MaxPathSteps = 65536

// Exit is a reachable neighbour of a cell and the cost of stepping there.
type Exit struct {
	Idx  int
	Cost float64
}

// PathMap is the view of a grid needed for shortest-path queries.
type PathMap interface {
	Exits(idx int) []Exit
	PathingDistance(a, b int) float64
}

// Path is the result of a shortest-path search. Steps starts with the start
// index and ends with the goal index when Success is true.
type Path struct {
	Success bool
	Steps   []int
}

type openNode struct {
	idx   int
	f     float64
	order int
	index int
}

type openSet []*openNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].order < s[j].order
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x any) {
	n := x.(*openNode)
	n.index = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*s = old[:len(old)-1]
	return n
}

// AStar finds the cheapest path from start to goal. Ties on f-score are
// broken by insertion order so results are deterministic.
func AStar(start, goal int, m PathMap) Path {
	if start == goal {
		return Path{Success: true, Steps: []int{start}}
	}

	gScore := map[int]float64{start: 0}
	cameFrom := map[int]int{}
	closed := map[int]bool{}
	open := &openSet{}
	order := 0
	heap.Push(open, &openNode{idx: start, f: m.PathingDistance(start, goal), order: order})

	for steps := 0; open.Len() > 0 && steps < MaxPathSteps; steps++ {
		cur := heap.Pop(open).(*openNode)
		if cur.idx == goal {
			return Path{Success: true, Steps: reconstruct(cameFrom, start, goal)}
		}
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true

		for _, ex := range m.Exits(cur.idx) {
			if closed[ex.Idx] {
				continue
			}
			g := gScore[cur.idx] + ex.Cost
			if old, ok := gScore[ex.Idx]; ok && g >= old {
				continue
			}
			gScore[ex.Idx] = g
			cameFrom[ex.Idx] = cur.idx
			order++
			heap.Push(open, &openNode{idx: ex.Idx, f: g + m.PathingDistance(ex.Idx, goal), order: order})
		}
	}
	return Path{}
}

func reconstruct(cameFrom map[int]int, start, goal int) []int {
	steps := []int{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
