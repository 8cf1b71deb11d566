package binary

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/forest/item"
	"go.lepak.sg/forest/testutils"
	"go.lepak.sg/forest/tree"
	"go.uber.org/goleak"
	"golang.org/x/exp/slices"
)

func fill[T tree.Comparable[T]](items ...T) *Tree[T] {
	tr := New[T]()
	for _, k := range items {
		tr.Insert(k)
	}
	return tr
}

func letters(s string) []item.String {
	var out []item.String
	for _, r := range s {
		out = append(out, item.String(r))
	}
	return out
}

func ints(vs ...int) []item.Int {
	out := make([]item.Int, len(vs))
	for i, v := range vs {
		out[i] = item.Int(v)
	}
	return out
}

// newLetterTree returns a complete tree with D at the root,
// B and F below it and A, C, E and G as leaves.
func newLetterTree() *Tree[item.String] {
	return fill(letters("DFEBGCA")...)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []item.Int
		post    func(t *testing.T, tr *Tree[item.Int])
	}{
		{
			name: "empty",
			post: func(t *testing.T, tr *Tree[item.Int]) {
				assert.Nil(t, tr.root)
				assert.True(t, tr.IsEmpty())
				assert.Equal(t, 0, tr.Count())
				assert.Equal(t, -1, tr.Height())
			},
		},
		{
			name:    "one",
			inserts: ints(1),
			post: func(t *testing.T, tr *Tree[item.Int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, item.Int(1), tr.root.Item())
				assert.Nil(t, tr.root.Left())
				assert.Nil(t, tr.root.Right())
				assert.Nil(t, tr.root.Parent())
				assert.Equal(t, 0, tr.Height())
			},
		},
		{
			name:    "one duplicate",
			inserts: ints(1, 1),
			post: func(t *testing.T, tr *Tree[item.Int]) {
				assert.Equal(t, 2, tr.Count())
				assert.Equal(t, item.Int(1), tr.root.Item())
				require.NotNil(t, tr.root.Left(), "ties go left")
				assert.Equal(t, item.Int(1), tr.root.Left().Item())
				assert.Nil(t, tr.root.Right())
				assert.Equal(t, tr.root, tr.root.Left().Parent())
			},
		},
		{
			name:    "left",
			inserts: ints(2, 1),
			post: func(t *testing.T, tr *Tree[item.Int]) {
				assert.Equal(t, item.Int(2), tr.root.Item())
				assert.NotNil(t, tr.root.Left())
				assert.Nil(t, tr.root.Right())
				assert.Nil(t, tr.root.Parent())
				assert.Equal(t, item.Int(1), tr.root.Left().Item())
				assert.True(t, tr.root.Left().IsLeaf())
				assert.Equal(t, tr.root, tr.root.Left().Parent())
			},
		},
		{
			name:    "right",
			inserts: ints(1, 2),
			post: func(t *testing.T, tr *Tree[item.Int]) {
				assert.Equal(t, item.Int(1), tr.root.Item())
				assert.Nil(t, tr.root.Left())
				assert.NotNil(t, tr.root.Right())
				assert.Equal(t, item.Int(2), tr.root.Right().Item())
				assert.True(t, tr.root.Right().IsLeaf())
				assert.Equal(t, tr.root, tr.root.Right().Parent())
			},
		},
		{
			name:    "sorted",
			inserts: ints(1, 2, 3, 4, 5, 6, 7),
			post: func(t *testing.T, tr *Tree[item.Int]) {
				assert.Equal(t, 6, tr.Height())
				assert.Equal(t, 2, tr.IdealHeight())
				assert.False(t, tr.Balanced())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[item.Int]{}

			for _, k := range tt.inserts {
				assert.Equal(t, &tr, tr.Insert(k), "chainable")
			}

			assert.Equal(t, len(tt.inserts), tr.Count())
			require.NoError(t, tr.Check())
			tt.post(t, &tr)
		})
	}
}

func TestSearch(t *testing.T) {
	tr := fill(ints(5, 3, 7, 12, 10)...)
	assert.Equal(t, 5, tr.Count())

	n := tr.Search(10)
	require.NotNil(t, n)
	assert.Equal(t, item.Int(10), n.Item())
	assert.True(t, tr.Contains(3))

	assert.Nil(t, tr.Search(11))
	assert.False(t, tr.Contains(11))

	var empty Tree[item.Int]
	assert.Nil(t, empty.Search(1))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	tr := fill(letters("DFEBGCA")...)
	n := tr.Search("e")
	require.NotNil(t, n)
	assert.Equal(t, item.String("E"), n.Item())
}

func TestToSlice(t *testing.T) {
	tests := []struct {
		name  string
		items string
		order tree.Traversal
		want  string
	}{
		{"in", "DFEBGCA", tree.TraverseInOrder, "ABCDEFG"},
		{"pre", "DFEBGCA", tree.TraversePreOrder, "DBACFEG"},
		{"post", "DFEBGCA", tree.TraversePostOrder, "ACBEGFD"},
		{"level", "DFEBGCA", tree.TraverseLevelOrder, "DBFACEG"},
		{"reverse", "DFEBGCA", tree.TraverseReverseOrder, "GFEDCBA"},
		{"in, unbalanced", "ADFEBGC", tree.TraverseInOrder, "ABCDEFG"},
		{"level, unbalanced", "ADFEBGC", tree.TraverseLevelOrder, "ADBFCEG"},
		{"empty", "", tree.TraverseLevelOrder, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := fill(letters(tt.items)...)
			assert.Equal(t, letters(tt.want), nilIfEmpty(tr.ToSlice(tt.order)))
		})
	}
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		removes string
		level   string
		height  int
	}{
		{
			name:    "absent",
			removes: "Z",
			level:   "DBFACEG",
			height:  2,
		},
		{
			name:    "leaf",
			removes: "A",
			level:   "DBFCEG",
			height:  2,
		},
		{
			name:    "only right child",
			removes: "AB",
			level:   "DCFEG",
			height:  2,
		},
		{
			name:    "only left child",
			removes: "CB",
			level:   "DAFEG",
			height:  2,
		},
		{
			name:    "two children",
			removes: "F",
			level:   "DBGACE",
			height:  2,
		},
		{
			name:    "root",
			removes: "D",
			level:   "FEGBAC",
			height:  3,
		},
		{
			name:    "everything",
			removes: "DBFACEG",
			level:   "",
			height:  -1,
		},
		{
			name:    "case insensitive",
			removes: "a",
			level:   "DBFCEG",
			height:  2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newLetterTree()

			for _, k := range letters(tt.removes) {
				assert.Equal(t, tr, tr.Remove(k), "chainable")
				require.NoError(t, tr.Check())
			}

			assert.Equal(t, letters(tt.level), nilIfEmpty(tr.ToSlice(tree.TraverseLevelOrder)))
			assert.Equal(t, len(tt.level), tr.Count())
			assert.Equal(t, tt.height, tr.Height())
		})
	}
}

func TestRemove_Duplicates(t *testing.T) {
	tr := fill(ints(5, 3, 5, 8, 5)...)
	require.Equal(t, 5, tr.Count())

	for i := 3; i > 0; i-- {
		require.True(t, tr.Contains(5))
		tr.Remove(5)
		require.NoError(t, tr.Check())
		assert.Equal(t, i+1, tr.Count())
	}

	assert.False(t, tr.Contains(5))
	assert.Equal(t, ints(3, 8), tr.ToSlice(tree.TraverseInOrder))
}

func TestRemove_Random(t *testing.T) {
	rd := rand.New(rand.NewSource(0x5eed))
	const rounds = 20
	const ops = 300

	for round := 0; round < rounds; round++ {
		tr := New[item.Int]()
		var want []int

		for op := 0; op < ops; op++ {
			k := rd.Intn(50)
			if rd.Intn(3) == 0 {
				tr.Remove(item.Int(k))
				if i := slices.Index(want, k); i >= 0 {
					want = slices.Delete(want, i, i+1)
				}
			} else {
				tr.Insert(item.Int(k))
				want = append(want, k)
			}
			require.NoError(t, tr.Check(), "round %d op %d", round, op)
		}

		slices.Sort(want)
		assert.Equal(t, ints(want...), tr.ToSlice(tree.TraverseInOrder))
		assert.Equal(t, len(want), tr.Count())
	}
}

func TestInsertValue(t *testing.T) {
	tr := New(WithFactory[item.Int](item.IntFactory))

	_, err := tr.InsertValue(3)
	assert.NoError(t, err)
	_, err = tr.InsertValue("4")
	assert.NoError(t, err)
	_, err = tr.InsertValue(item.Int(5))
	assert.NoError(t, err)

	_, err = tr.InsertValue(1.5)
	assert.ErrorIs(t, err, item.ErrInvalidConfiguration)
	_, err = tr.InsertValue("five")
	assert.ErrorIs(t, err, item.ErrInvalidConfiguration)

	assert.Equal(t, ints(3, 4, 5), tr.ToSlice(tree.TraverseInOrder))

	_, err = tr.RemoveValue(uint8(4))
	assert.NoError(t, err)
	_, err = tr.RemoveValue(struct{}{})
	assert.ErrorIs(t, err, item.ErrInvalidConfiguration)
	assert.Equal(t, ints(3, 5), tr.ToSlice(tree.TraverseInOrder))
}

func TestInsertValue_NoFactory(t *testing.T) {
	var tr Tree[item.String]

	_, err := tr.InsertValue("raw string")
	assert.ErrorIs(t, err, item.ErrInvalidConfiguration)
	assert.Equal(t, 0, tr.Count())

	_, err = tr.InsertValue(item.String("item"))
	assert.NoError(t, err)
	assert.Equal(t, 1, tr.Count())

	_, err = tr.RemoveValue("item")
	assert.ErrorIs(t, err, item.ErrInvalidConfiguration)
	assert.Equal(t, 1, tr.Count())
}

func TestWalk(t *testing.T) {
	tr := newLetterTree()

	var got []item.String
	tr.Walk(tree.TraversePreOrder, func(k item.String) bool {
		got = append(got, k)
		return k != "A"
	})
	assert.Equal(t, letters("DBA"), got)

	got = got[:0]
	for i := tr.InOrderIterator(); i.Next(); {
		got = append(got, i.Item())
	}
	assert.Equal(t, letters("ABCDEFG"), got)
}

func TestCoroutine(t *testing.T) {
	tr := newLetterTree()

	co := tr.Coroutine(context.Background(), tree.TraverseLevelOrder)
	testutils.DrainBlocking(t, letters("DBFACEG"), co.Items(), time.Second)

	co = tr.Coroutine(context.Background(), tree.TraverseInOrder)
	for k := range co.Items() {
		if k == "C" {
			co.Stop()
		}
	}

	goleak.VerifyNone(t)
}

func TestString(t *testing.T) {
	tr := fill(ints(4, 2, 6, 1, 3, 5, 7)...)
	want := strings.Join([]string{
		"4",
		"├─L─2",
		"│   ├─L─1",
		"│   └─R─3",
		"└─R─6",
		"    ├─L─5",
		"    └─R─7",
		"",
	}, "\n")
	assert.Equal(t, want, tr.String())
	assert.True(t, tr.Balanced())
	assert.Equal(t, tr.IdealHeight(), tr.Height())

	assert.Equal(t, "", New[item.Int]().String())
}

func TestIdealHeight(t *testing.T) {
	for n, want := range map[int]int{0: -1, 1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3, 100: 6} {
		tr := BuildRandom(n, 1)
		assert.Equal(t, want, tr.IdealHeight(), "n=%d", n)
		assert.GreaterOrEqual(t, tr.Height(), tr.IdealHeight(), "n=%d", n)
	}
}
