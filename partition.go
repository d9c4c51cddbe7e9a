package kdpart

import "fmt"

// maxPartitionLevel caps Partition at 2^30 buckets, the largest power of
// two that keeps bucket indices comfortably inside int32 range.
const maxPartitionLevel = 30

// Partition distributes the ids of all indexed points across exactly
// 1<<level buckets of spatially coherent subtrees, for handing contiguous
// regions of space to parallel workers. Level 0 returns everything in one
// bucket; each additional level splits every region in two along the
// tree's axis rotation.
//
// Points above the cut depth land in the bucket their traversal path has
// reached so far, so buckets are near-even for the balanced trees New
// builds, but they are not guaranteed equal; duplicate-heavy input can
// leave some buckets short or empty. Use BalanceOf to judge a level before
// committing to it.
//
// Returns ErrEmptyTree when the tree is empty, and an error when level is
// negative or larger than 30.
func (t *Tree) Partition(level int) ([][]uint64, error) {
	if t.Empty() {
		return nil, ErrEmptyTree
	}
	if level < 0 || level > maxPartitionLevel {
		return nil, fmt.Errorf("kdpart: partition level must be in [0, %d], got %d", maxPartitionLevel, level)
	}
	buckets := make([][]uint64, 1<<level)
	t.walk(t.root, 0, level, 0, buckets)
	return buckets, nil
}

// walk threads a bucket index through the tree: above the cut depth a node
// records its own id in the current bucket and sends its children to
// buckets 2*cur and 2*cur+1; at the cut depth the node's whole subtree is
// accumulated into the current bucket. Absent children are skipped, which
// is what leaves buckets empty on lopsided trees.
func (t *Tree) walk(id int32, depth, level, cur int, buckets [][]uint64) {
	if id == noChild {
		return
	}
	node := &t.nodes[id]
	if depth == level {
		t.accumulate(id, &buckets[cur])
		return
	}
	buckets[cur] = append(buckets[cur], node.pt.ID())
	t.walk(node.left, depth+1, level, 2*cur, buckets)
	t.walk(node.right, depth+1, level, 2*cur+1, buckets)
}

// accumulate appends the ids of the subtree rooted at arena index id in
// pre-order.
func (t *Tree) accumulate(id int32, out *[]uint64) {
	if id == noChild {
		return
	}
	node := &t.nodes[id]
	*out = append(*out, node.pt.ID())
	t.accumulate(node.left, out)
	t.accumulate(node.right, out)
}
