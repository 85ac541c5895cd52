package wallet

import (
	"bytes"
	"crypto/rsa"
	"errors"

	"github.com/ralinc/scrooge-coin/model"
	"github.com/ralinc/scrooge-coin/utils"
)

// User signs transactions that spend the outputs it owns.
type Wallet struct {
	Keys *rsa.PrivateKey
	// Outputs this wallet believes are spendable, as of the last Observe.
	UTXOs map[model.UTXO]model.Output
}

// NewWallet creates a wallet with a freshly generated key pair.
func NewWallet(keyBits int) (*Wallet, error) {
	sk, _ := utils.GenerateKeyPair(keyBits)
	if sk == nil {
		return nil, errors.New("failed to generate wallet keys")
	}
	return &Wallet{
		Keys:  sk,
		UTXOs: make(map[model.UTXO]model.Output),
	}, nil
}

// NewWalletFromKeyFile creates a wallet around a key loaded from fPath.
func NewWalletFromKeyFile(fPath string, createNewKey bool, keyBits int) (*Wallet, error) {
	sk, err := utils.ParseKeyFile(fPath, createNewKey, keyBits)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		Keys:  sk,
		UTXOs: make(map[model.UTXO]model.Output),
	}, nil
}

func (w *Wallet) PublicKeyBytes() []byte {
	return utils.PublicKeyToBytes(&w.Keys.PublicKey)
}

// Observe scans a ledger snapshot and records every output owned by this
// wallet, replacing whatever set of spendable outputs it knew before.
func (w *Wallet) Observe(l *model.Ledger) {
	pk := w.PublicKeyBytes()
	w.UTXOs = make(map[model.UTXO]model.Output)
	for utxo, output := range l.L {
		if bytes.Equal(output.PublicKey, pk) {
			w.UTXOs[utxo] = output
		}
	}
}

// Balance is the total value of the outputs the wallet currently knows it owns.
func (w *Wallet) Balance() float64 {
	var total = 0.0
	for _, output := range w.UTXOs {
		total += output.Value
	}
	return total
}

// CreatePendingTransaction builds a transaction paying outputs, spending every
// known UTXO and sending whatever is left back to the wallet itself, then signs
// each input and fills in the hash.
func (w *Wallet) CreatePendingTransaction(outputs []model.Output) (*model.Transaction, error) {
	var inputs []model.Input
	// Total money from all UTXOs.
	var totalValue = 0.0
	for utxo := range w.UTXOs {
		inputs = append(inputs, model.Input{
			PrevTxHash: utxo.PrevTxHash,
			Index:      utxo.Index,
		})
		totalValue += w.UTXOs[utxo].Value
	}
	// Total amount of money transferred to others.
	var totalTransferValue = 0.0
	for i := 0; i < len(outputs); i++ {
		totalTransferValue += outputs[i].Value
	}
	if totalTransferValue > totalValue {
		return nil, errors.New("insufficient balance")
	}

	// Output with the amount of money left after the transfer.
	selfOutput := model.Output{
		Value:     totalValue - totalTransferValue,
		PublicKey: w.PublicKeyBytes(),
	}
	outputs = append(outputs, selfOutput)

	pendingTransaction := &model.Transaction{
		Inputs:  inputs,
		Outputs: outputs,
	}
	// Sign every input with our own private key.
	for i := 0; i < len(inputs); i++ {
		toSignMsg, err := utils.GetInputDataToSignByIndex(pendingTransaction, i)
		if err != nil {
			return nil, err
		}
		sig, err := utils.Sign(toSignMsg, w.Keys)
		if err != nil {
			return nil, err
		}
		pendingTransaction.Inputs[i].Signature = sig
	}
	hash, err := utils.HashTransaction(pendingTransaction)
	if err != nil {
		return nil, err
	}
	pendingTransaction.Hash = hash
	return pendingTransaction, nil
}
