package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"ndplot/types"
)

// TestPendingTableKeepsNewest 连续提交时只保留最后一个表格
func TestPendingTableKeepsNewest(t *testing.T) {
	var p pendingTable
	assert.Nil(t, p.Take())

	first := &types.Table{AttributeNames: []string{"a"}}
	second := &types.Table{AttributeNames: []string{"b"}}
	assert.False(t, p.Put(first))
	assert.True(t, p.Put(second))
	assert.Same(t, second, p.Take())
	assert.Nil(t, p.Take())
}

// TestPendingTableConcurrent 并发提交后槽位中是某一次提交的表格
func TestPendingTableConcurrent(t *testing.T) {
	var p pendingTable
	tables := make([]*types.Table, 16)
	var wg sync.WaitGroup
	for i := range tables {
		tables[i] = &types.Table{}
		wg.Add(1)
		go func(t *types.Table) {
			defer wg.Done()
			p.Put(t)
		}(tables[i])
	}
	wg.Wait()
	assert.Contains(t, tables, p.Take())
	assert.Nil(t, p.Take())
}
