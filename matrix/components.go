// SPDX-License-Identifier: MIT

package matrix

// Components labels the connected components of the undirected graph underlying m.
// labels[j] is the component id of column j (ids are dense, assigned in order of the
// lowest column of each component); count is the number of components.
// Edges with an absent endpoint connect nothing.
//
// Implementation:
//   - Stage 1: build per-column neighbor lists from the stored endpoints.
//   - Stage 2: breadth-first search from every unvisited column in ascending order.
//
// Complexity: O(|E| + N) time and space.
func (m *Incidence) Components() (labels []int, count int) {
	neighbors := make([][]int, m.cols)
	for e := range m.low {
		l, h := m.low[e], m.high[e]
		if l == absentColumn || h == absentColumn {
			continue
		}
		neighbors[l] = append(neighbors[l], h)
		neighbors[h] = append(neighbors[h], l)
	}

	labels = make([]int, m.cols)
	for j := range labels {
		labels[j] = absentColumn
	}
	queue := make([]int, 0, m.cols)
	for start := 0; start < m.cols; start++ {
		if labels[start] != absentColumn {
			continue
		}
		labels[start] = count
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, nbr := range neighbors[v] {
				if labels[nbr] == absentColumn {
					labels[nbr] = count
					queue = append(queue, nbr)
				}
			}
		}
		count++
	}

	return labels, count
}
