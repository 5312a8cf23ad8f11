package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[int, int](4, 100)
	wp.Start(func(job int) int {
		return job * job
	})
	for i := 0; i < 100; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	got := make([]int, 0, 100)
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)

	assert.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
}

func TestMapKeepsJobOrder(t *testing.T) {
	jobs := []string{"bogota", "medellin", "cali", "leticia", "pasto"}
	got := Map(3, jobs, func(s string) int { return len(s) })
	assert.Equal(t, []int{6, 8, 4, 7, 5}, got)

	assert.Empty(t, Map(2, []int{}, func(i int) int { return i }))
}
