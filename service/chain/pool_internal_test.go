package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashank-khanna/blockchain/testing/mocks"
)

func TestPool(t *testing.T) {
	pool := NewPool()

	assert.Zero(t, pool.Len())
	assert.Empty(t, pool.All())

	transactions := mocks.GenericTransactions(3)
	for _, transaction := range transactions {
		pool.Add(transaction)
	}

	assert.Equal(t, 3, pool.Len())
	assert.Equal(t, transactions, pool.All())

	// All does not consume the pool.
	assert.Equal(t, transactions, pool.All())

	pool.Clear()

	assert.Zero(t, pool.Len())
}
