package mergesort

import (
	"cmp"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/pingcap/check"
)

var _ = check.Suite(&sortTestSuite{})

func TestT(t *testing.T) {
	check.TestingT(t)
}

func prepare(src []int64, seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed))
	for i := range src {
		src[i] = r.Int64()
	}
}

type sortTestSuite struct{}

func (s *sortTestSuite) TestMergeSort(c *check.C) {
	lens := []int{1, 3, 5, 7, 11, 13, 17, 19, 23, 29, 1024, 1 << 13, 1 << 17}

	for i := range lens {
		src := make([]int64, lens[i])
		expect := make([]int64, lens[i])
		prepare(src, uint64(i))
		copy(expect, src)
		MergeSort(src)
		sort.Slice(expect, func(i, j int) bool { return expect[i] < expect[j] })
		for i := 0; i < len(src); i++ {
			c.Assert(src[i], check.Equals, expect[i])
		}
	}
}

func (s *sortTestSuite) TestSmallInputs(c *check.C) {
	for _, t := range []struct {
		in     []int
		expect []int
	}{
		{[]int{5, 3, 1, 4, 2}, []int{1, 2, 3, 4, 5}},
		{[]int{}, []int{}},
		{[]int{1, 1, 1}, []int{1, 1, 1}},
		{[]int{2, 1}, []int{1, 2}},
		{[]int{7}, []int{7}},
		{[]int{3, 1, 3, 1, 2}, []int{1, 1, 2, 3, 3}},
	} {
		MergeSort(t.in)
		c.Assert(t.in, check.DeepEquals, t.expect)
	}
}

func (s *sortTestSuite) TestNilSlice(c *check.C) {
	var src []int
	MergeSort(src)
	c.Assert(src, check.HasLen, 0)
}

func (s *sortTestSuite) TestAlreadySorted(c *check.C) {
	src := make([]int, 1000)
	for i := range src {
		src[i] = i + 1
	}
	expect := append([]int(nil), src...)
	MergeSort(src)
	c.Assert(src, check.DeepEquals, expect)
}

func (s *sortTestSuite) TestReverseSorted(c *check.C) {
	src := make([]int, 1000)
	for i := range src {
		src[i] = len(src) - i
	}
	MergeSort(src)
	for i := range src {
		c.Assert(src[i], check.Equals, i+1)
	}
}

func (s *sortTestSuite) TestPreservesElements(c *check.C) {
	r := rand.New(rand.NewPCG(7, 7))
	src := make([]int, 5000)
	counts := make(map[int]int)
	for i := range src {
		src[i] = r.IntN(1000) + 1
		counts[src[i]]++
	}
	MergeSort(src)
	c.Assert(src, check.HasLen, 5000)
	for i := 1; i < len(src); i++ {
		c.Assert(src[i-1] <= src[i], check.Equals, true)
	}
	for _, v := range src {
		counts[v]--
	}
	for v, n := range counts {
		c.Assert(n, check.Equals, 0, check.Commentf("value %d", v))
	}
}

type tagged struct {
	key int
	tag int
}

func (s *sortTestSuite) TestStable(c *check.C) {
	r := rand.New(rand.NewPCG(1, 2))
	src := make([]tagged, 2000)
	for i := range src {
		src[i] = tagged{key: r.IntN(10), tag: i}
	}
	MergeSortFunc(src, func(a, b tagged) int { return cmp.Compare(a.key, b.key) })
	for i := 1; i < len(src); i++ {
		prev, cur := src[i-1], src[i]
		c.Assert(prev.key <= cur.key, check.Equals, true)
		if prev.key == cur.key {
			c.Assert(prev.tag < cur.tag, check.Equals, true,
				check.Commentf("key %d: tag %d before %d", cur.key, prev.tag, cur.tag))
		}
	}
}

func (s *sortTestSuite) TestMerge(c *check.C) {
	left := []tagged{{1, 0}, {2, 1}, {4, 2}}
	right := []tagged{{2, 3}, {3, 4}}
	dst := make([]tagged, len(left)+len(right))
	Merge(dst, left, right, func(a, b tagged) int { return cmp.Compare(a.key, b.key) })
	c.Assert(dst, check.DeepEquals, []tagged{{1, 0}, {2, 1}, {2, 3}, {3, 4}, {4, 2}})
}

func (s *sortTestSuite) TestStrings(c *check.C) {
	src := []string{"pear", "apple", "fig", "apple"}
	MergeSort(src)
	c.Assert(src, check.DeepEquals, []string{"apple", "apple", "fig", "pear"})
}
