package Trees

import (
	"testing"
)

const bAddN = 100000

var sideEff *Node[int, uint32]

func createTree(b *testing.B) *SplayTree[int, int, uint32] {
	b.Helper()
	tree := New[int, uint32]()
	for i := range bAddN {
		tree.Insert(i)
	}
	return tree
}

func BenchmarkInsertRand(b *testing.B) {
	for range b.N {
		tree := New[int, uint32]()
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

// BenchmarkInsertSeq inserts ascending keys; each new maximum is one
// rotation away from the root, splay's cheap case.
func BenchmarkInsertSeq(b *testing.B) {
	for range b.N {
		tree := New[int, uint32]()
		for i := range bAddN {
			tree.Insert(i)
		}
	}
}

func BenchmarkFindRand(b *testing.B) {
	tree := createTree(b)
	b.ResetTimer()
	for range b.N {
		sideEff = tree.Find(rg.Intn(bAddN))
	}
}

// BenchmarkFindHot hammers a small working set; splaying keeps it within
// a few levels of the root.
func BenchmarkFindHot(b *testing.B) {
	tree := createTree(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Find(i & 15)
	}
}

func BenchmarkFindMiss(b *testing.B) {
	tree := createTree(b)
	b.ResetTimer()
	for range b.N {
		sideEff = tree.Find(bAddN + rg.Intn(bAddN))
	}
}

func BenchmarkRankK(b *testing.B) {
	tree := createTree(b)
	b.ResetTimer()
	for range b.N {
		sideEff = tree.RankK(uint(rg.Intn(bAddN)))
	}
}

func BenchmarkSplitMerge(b *testing.B) {
	tree := createTree(b)
	b.ResetTimer()
	for range b.N {
		right := tree.SplitAt(rg.Intn(bAddN))
		tree.Merge(right)
	}
}
