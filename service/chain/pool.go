package chain

import (
	"sync"

	"github.com/gammazero/deque"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

// Pool is a concurrency-safe FIFO queue of pending transactions.
// NOTE: As specified in the original Deque documentation, concurrency
// safety is up to the consumer to provide.
// See https://github.com/gammazero/deque
type Pool struct {
	mutex *sync.Mutex
	deque *deque.Deque
}

// NewPool instantiates and returns a new empty pending-transaction pool.
func NewPool() *Pool {
	p := Pool{
		mutex: &sync.Mutex{},
		deque: deque.New(),
	}
	return &p
}

// Add appends a transaction to the back of the pool.
func (p *Pool) Add(transaction ledger.Transaction) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.deque.PushBack(transaction)
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.deque.Len()
}

// All returns the pending transactions in arrival order without removing
// them from the pool.
func (p *Pool) All() []ledger.Transaction {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	transactions := make([]ledger.Transaction, 0, p.deque.Len())
	for i := 0; i < p.deque.Len(); i++ {
		transactions = append(transactions, p.deque.At(i).(ledger.Transaction))
	}
	return transactions
}

// Clear removes all pending transactions from the pool.
func (p *Pool) Clear() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.deque.Clear()
}
