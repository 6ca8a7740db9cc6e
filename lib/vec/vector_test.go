package vec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorPushBackAndAt(t *testing.T) {
	v := New[int]()
	require.True(t, v.Empty())
	for i := 0; i < 10; i++ {
		v.PushBack(i * 10)
	}
	require.Equal(t, int64(10), v.Len())
	require.GreaterOrEqual(t, v.Cap(), v.Len())
	for i := int64(0); i < 10; i++ {
		val, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, int(i)*10, val)
	}
	_, err := v.At(10)
	require.True(t, errors.Is(err, ErrIndexOutOfBounds))
	_, err = v.At(-1)
	require.True(t, errors.Is(err, ErrIndexOutOfBounds))
}

func TestVectorFrontBackPopBack(t *testing.T) {
	v := New[string]()
	_, err := v.Front()
	require.True(t, errors.Is(err, ErrEmptyVector))
	_, err = v.Back()
	require.True(t, errors.Is(err, ErrEmptyVector))
	require.True(t, errors.Is(v.PopBack(), ErrEmptyVector))

	v.PushBack("a")
	v.PushBack("b")
	v.PushBack("c")
	front, err := v.Front()
	require.NoError(t, err)
	require.Equal(t, "a", front)
	back, err := v.Back()
	require.NoError(t, err)
	require.Equal(t, "c", back)

	require.NoError(t, v.PopBack())
	back, err = v.Back()
	require.NoError(t, err)
	require.Equal(t, "b", back)
	require.Equal(t, int64(2), v.Len())
}

func TestVectorSetAndRef(t *testing.T) {
	v := New[int]()
	v.PushBack(1)
	v.PushBack(2)
	require.NoError(t, v.Set(1, 20))
	val, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 20, val)
	require.True(t, errors.Is(v.Set(2, 30), ErrIndexOutOfBounds))

	ref, err := v.Ref(0)
	require.NoError(t, err)
	*ref = 100
	val, err = v.At(0)
	require.NoError(t, err)
	require.Equal(t, 100, val)
	_, err = v.Ref(5)
	require.True(t, errors.Is(err, ErrIndexOutOfBounds))
}

func TestVectorInsertAndErase(t *testing.T) {
	v := New[int]()
	for _, n := range []int{1, 2, 4, 5} {
		v.PushBack(n)
	}
	require.NoError(t, v.Insert(2, 3))
	require.NoError(t, v.Insert(0, 0))
	require.NoError(t, v.Insert(v.Len(), 6))
	require.True(t, errors.Is(v.Insert(100, 7), ErrIndexOutOfBounds))
	require.True(t, errors.Is(v.Insert(-1, 7), ErrIndexOutOfBounds))

	expected := []int{0, 1, 2, 3, 4, 5, 6}
	collected := make([]int, 0, len(expected))
	v.Foreach(func(ix int64, val int) bool {
		collected = append(collected, val)
		return true
	})
	require.Equal(t, expected, collected)

	require.NoError(t, v.Erase(0))
	require.NoError(t, v.Erase(v.Len()-1))
	require.NoError(t, v.Erase(2))
	require.True(t, errors.Is(v.Erase(v.Len()), ErrIndexOutOfBounds))

	collected = collected[:0]
	v.Foreach(func(ix int64, val int) bool {
		collected = append(collected, val)
		return true
	})
	require.Equal(t, []int{1, 2, 4, 5}, collected)
}

func TestVectorGrowthDoubling(t *testing.T) {
	v := New[int]()
	v.PushBack(1)
	require.Equal(t, int64(defaultCapacity), v.Cap())
	for i := 0; i < defaultCapacity; i++ {
		v.PushBack(i)
	}
	require.Equal(t, int64(2*defaultCapacity), v.Cap())
	require.Equal(t, int64(defaultCapacity+1), v.Len())
}

func TestVectorForeachEarlyStop(t *testing.T) {
	v := New[int]()
	for i := 0; i < 10; i++ {
		v.PushBack(i)
	}
	visited := int64(0)
	v.Foreach(func(ix int64, val int) bool {
		visited++
		return ix < 3
	})
	require.Equal(t, int64(4), visited)
}

func TestVectorCloneIndependence(t *testing.T) {
	v := New[int]()
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}
	cp := v.Clone()
	require.Equal(t, v.Len(), cp.Len())
	require.NoError(t, cp.Set(0, 99))
	val, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 0, val)
	require.NoError(t, v.PopBack())
	require.Equal(t, int64(5), cp.Len())
}

func TestVectorClearAndReuse(t *testing.T) {
	v := New[int]()
	v.PushBack(1)
	v.Clear()
	require.True(t, v.Empty())
	require.Equal(t, int64(0), v.Len())
	v.PushBack(2)
	front, err := v.Front()
	require.NoError(t, err)
	require.Equal(t, 2, front)
}
