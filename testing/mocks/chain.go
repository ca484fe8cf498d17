package mocks

import (
	"context"
	"testing"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

type Chain struct {
	SizeFunc     func() uint64
	LastFunc     func() (ledger.Block, error)
	QueueFunc    func(sender string, recipient string, amount float64) ledger.Transaction
	QueueFeeFunc func() ledger.Transaction
	SealFunc     func(ctx context.Context) (ledger.Block, error)
	BlocksFunc   func() []ledger.Block
	VerifyFunc   func() error
}

func BaselineChain(t *testing.T) *Chain {
	t.Helper()

	c := Chain{
		SizeFunc: func() uint64 {
			return 1
		},
		LastFunc: func() (ledger.Block, error) {
			return GenericBlock(1), nil
		},
		QueueFunc: func(sender string, recipient string, amount float64) ledger.Transaction {
			return ledger.Transaction{Sender: sender, Recipient: recipient, Amount: amount}
		},
		QueueFeeFunc: func() ledger.Transaction {
			return ledger.Transaction{Sender: ledger.FeeSender, Recipient: ledger.FeeRecipient, Amount: ledger.FeeAmount}
		},
		SealFunc: func(context.Context) (ledger.Block, error) {
			return GenericBlock(2), nil
		},
		BlocksFunc: func() []ledger.Block {
			return []ledger.Block{GenericBlock(1)}
		},
		VerifyFunc: func() error {
			return nil
		},
	}

	return &c
}

func (c *Chain) Size() uint64 {
	return c.SizeFunc()
}

func (c *Chain) Last() (ledger.Block, error) {
	return c.LastFunc()
}

func (c *Chain) Queue(sender string, recipient string, amount float64) ledger.Transaction {
	return c.QueueFunc(sender, recipient, amount)
}

func (c *Chain) QueueFee() ledger.Transaction {
	return c.QueueFeeFunc()
}

func (c *Chain) Seal(ctx context.Context) (ledger.Block, error) {
	return c.SealFunc(ctx)
}

func (c *Chain) Blocks() []ledger.Block {
	return c.BlocksFunc()
}

func (c *Chain) Verify() error {
	return c.VerifyFunc()
}
