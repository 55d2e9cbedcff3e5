package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

const defaultWaitTimeout = 5 * time.Minute

// transact sends packed calldata with the session signer and waits for the
// receipt.
func (c *Client) transact(ctx context.Context, session *models.Session, contract *bind.BoundContract, method string, data []byte) (*models.Transaction, error) {
	tx, _, err := c.send(ctx, session, contract, method, data)
	return tx, err
}

// send is transact that also returns the receipt, for callers that need
// the emitted logs.
func (c *Client) send(ctx context.Context, session *models.Session, contract *bind.BoundContract, method string, data []byte) (*models.Transaction, *types.Receipt, error) {
	if !session.CanSign() {
		return nil, nil, domain.ErrNoSigner
	}
	backend, err := c.Backend(ctx)
	if err != nil {
		return nil, nil, err
	}

	sent, err := c.submit(ctx, backend, session, contract, data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}
	c.log.Debug("transaction sent", "method", method, "tx", sent.Hash().Hex())

	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, backend, sent.Hash())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: waiting for %s: %w", method, sent.Hash().Hex(), err)
	}

	tx, err := receiptToTransaction(method, session, sent, receipt)
	if err != nil {
		return nil, receipt, err
	}
	return tx, receipt, nil
}

// submit signs and sends one transaction with the next nonce of the
// session's account. Only the submission is serialized; callers still wait
// for their receipts concurrently. A failed submission drops the cached
// nonce so the next one reseeds from the node.
func (c *Client) submit(ctx context.Context, backend RPCBackend, session *models.Session, contract *bind.BoundContract, data []byte) (*types.Transaction, error) {
	opts := *session.Signer
	opts.Context = ctx

	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	if opts.Nonce == nil {
		nonce, ok := c.nonces[opts.From]
		if !ok {
			pending, err := backend.PendingNonceAt(ctx, opts.From)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch nonce: %w", err)
			}
			nonce = pending
		}
		opts.Nonce = new(big.Int).SetUint64(nonce)
	}

	sent, err := bind.Transact(contract, &opts, data)
	if err != nil {
		delete(c.nonces, opts.From)
		return nil, err
	}
	c.nonces[opts.From] = sent.Nonce() + 1
	return sent, nil
}

// receiptToTransaction converts a mined receipt. Reverted receipts become
// domain.TxFailedErr.
func receiptToTransaction(method string, session *models.Session, sent *types.Transaction, receipt *types.Receipt) (*models.Transaction, error) {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, domain.TxFailedErr{Method: method, TxHash: receipt.TxHash.Hex()}
	}

	tx := &models.Transaction{
		Hash:   receipt.TxHash,
		Method: method,
		Status: models.TransactionStatusExecuted,
		Sender: session.Address,
	}
	if sent != nil && sent.To() != nil {
		tx.Target = *sent.To()
	}
	if receipt.BlockNumber != nil {
		tx.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return tx, nil
}
