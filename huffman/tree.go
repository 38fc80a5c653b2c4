package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"

	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/internal/pool"
)

// queuePool holds queue backing arrays sized for the whole alphabet, which is the
// most items the queue ever holds.
var queuePool = pool.NewSlicePool[queueItem]()

// BuildTree builds the Huffman code tree for freq.
//
// Every symbol with a nonzero count gets a leaf, and PseudoEOF always gets one,
// with weight 1 if its count is zero. The two lightest nodes are merged until one
// remains: the first popped becomes the left child. Weight ties are broken by
// creation order, so leaves come out in ascending symbol order before any merged
// node of equal weight.
//
// An input with no literals yields a single PseudoEOF leaf as the root.
func BuildTree(freq FrequencyTable) *Node {
	items, release := queuePool.Get(format.AlphabetSize)
	defer release()
	q := nodeQueue{list: items[:0]}

	var seq uint32
	for sym := range format.AlphabetSize {
		weight := freq[sym]
		if format.Symbol(sym) == format.PseudoEOF && weight == 0 {
			weight = 1
		}
		if weight == 0 {
			continue
		}

		q.list = append(q.list, queueItem{node: NewLeaf(format.Symbol(sym), weight), seq: seq})
		seq++
	}
	leaves := len(q.list)

	heap.Init(&q)
	for q.Len() > 1 {
		left := heap.Pop(&q).(queueItem)
		right := heap.Pop(&q).(queueItem)
		heap.Push(&q, queueItem{node: NewInternal(left.node, right.node), seq: seq})
		seq++
	}

	root := q.list[0].node
	assert.Assertf(int(seq) == 2*leaves-1, "created %d nodes for %d leaves", seq, leaves)
	assert.Assertf(root.Depth() <= format.MaxTreeDepth, "tree depth %d > %d", root.Depth(), format.MaxTreeDepth)

	return root
}

type queueItem struct {
	node *Node
	seq  uint32
}

// nodeQueue is a min-heap ordered by weight, then creation sequence.
type nodeQueue struct {
	list []queueItem
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}

	return a.seq < b.seq
}

func (q *nodeQueue) Push(x any) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() any {
	last := len(q.list) - 1
	x := q.list[last]
	q.list = q.list[:last]

	return x
}

var _ heap.Interface = (*nodeQueue)(nil)
