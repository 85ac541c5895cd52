package handler

import (
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"github.com/ralinc/scrooge-coin/model"
	"github.com/ralinc/scrooge-coin/utils"
)

// TxHandler settles batches of candidate transactions against the ledger it
// owns. Access is single threaded: one settlement runs at a time and nothing
// else touches the ledger.
type TxHandler struct {
	// The current pool of unspent outputs. Owned exclusively by this handler,
	// mutated only while applying an accepted transaction.
	ledger *model.Ledger
	logger *zap.SugaredLogger
	// A unique identifier of this handler. It doesn't affect settlement, only
	// used to tell instances apart in logs.
	uuid string
}

// New creates a handler whose ledger starts as a deep copy of snapshot. Later
// mutation of snapshot by the caller has no effect on the handler, and vice
// versa. A nil logger disables logging.
func New(snapshot *model.Ledger, logger *zap.SugaredLogger) *TxHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	myuuid := uuid.NewV4().String()
	return &TxHandler{
		ledger: snapshot.Copy(),
		logger: logger.With("handler", myuuid),
		uuid:   myuuid,
	}
}

// IsValidTx reports whether tx is acceptable against the current ledger:
// 1. Every input claims an output that is in the ledger.
// 2. Each input's signature verifies against the claimed output's public key
//    and that input's signing message.
// 3. No output is claimed more than once by tx.
// 4. All of tx's output values are non-negative.
// 5. The sum of input values is greater than or equal to the sum of output
//    values.
// It never mutates the ledger, so a failed candidate can be resubmitted later.
func (h *TxHandler) IsValidTx(tx *model.Transaction) bool {
	var totalInput = 0.0
	var totalOutput = 0.0

	// Outputs already claimed by this transaction, to catch internal double spends.
	seenUtxo := make(map[model.UTXO]bool)

	for i := 0; i < len(tx.Inputs); i++ {
		input := &tx.Inputs[i]
		inputUtxo := utils.CreateUtxoFromInput(input)
		if !h.ledger.Contains(inputUtxo) {
			h.logger.Debugw("input does not claim an unspent output", "tx", tx.Hash, "input", i)
			return false
		}
		output := h.ledger.Get(inputUtxo)
		totalInput += output.Value

		// Verify signature.
		inputData, err := utils.GetInputDataToSignByIndex(tx, i)
		if err != nil {
			h.logger.Debugw("failed to build signing message", "tx", tx.Hash, "input", i, "err", err)
			return false
		}
		pk := utils.BytesToPublicKey(output.PublicKey)
		if pk == nil {
			h.logger.Debugw("claimed output has a malformed public key", "tx", tx.Hash, "input", i)
			return false
		}
		if !utils.Verify(inputData, pk, input.Signature) {
			h.logger.Debugw("signature does not match the input data", "tx", tx.Hash, "input", i)
			return false
		}

		// No double spending within the transaction itself.
		if seenUtxo[inputUtxo] {
			h.logger.Debugw("output claimed twice by the same transaction", "tx", tx.Hash, "input", i)
			return false
		}
		seenUtxo[inputUtxo] = true
	}

	for i := 0; i < len(tx.Outputs); i++ {
		output := &tx.Outputs[i]
		if output.Value < 0 {
			h.logger.Debugw("negative output value", "tx", tx.Hash, "output", i)
			return false
		}
		totalOutput += output.Value
	}

	if totalInput < totalOutput {
		h.logger.Debugw("outputs exceed inputs", "tx", tx.Hash, "totalInput", totalInput, "totalOutput", totalOutput)
		return false
	}
	return true
}

// HandleTxs settles one epoch: a single forward pass over txs in the given
// order, validating each transaction against the ledger as left by the
// acceptances before it. The returned slice keeps the accepted transactions in
// batch order. Two transactions claiming the same output are settled in favor
// of the one appearing earlier, and a transaction depending on an output
// produced later in the batch is rejected, not retried. Acceptance is therefore
// batch-order-sensitive on purpose.
func (h *TxHandler) HandleTxs(txs []*model.Transaction) []*model.Transaction {
	accepted := make([]*model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !h.IsValidTx(tx) {
			continue
		}
		h.apply(tx)
		accepted = append(accepted, tx)
	}
	h.logger.Debugw("settled epoch",
		"submitted", len(txs), "accepted", len(accepted), "poolSize", h.ledger.Size())
	return accepted
}

// apply claims every input and stores every output of tx. Only called on a
// transaction that just passed IsValidTx, so it cannot fail halfway through.
func (h *TxHandler) apply(tx *model.Transaction) {
	for i := 0; i < len(tx.Inputs); i++ {
		h.ledger.Remove(utils.CreateUtxoFromInput(&tx.Inputs[i]))
	}
	for i := 0; i < len(tx.Outputs); i++ {
		utxo := model.UTXO{
			PrevTxHash: tx.Hash,
			Index:      int64(i),
		}
		h.ledger.Add(utxo, tx.Outputs[i])
	}
}

// LedgerSnapshot returns a deep copy of the current ledger.
func (h *TxHandler) LedgerSnapshot() *model.Ledger {
	return h.ledger.Copy()
}
