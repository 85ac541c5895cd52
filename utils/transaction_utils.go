package utils

import (
	"errors"

	"github.com/ralinc/scrooge-coin/model"
)

// CreateUtxoFromInput names the output an input claims.
func CreateUtxoFromInput(input *model.Input) model.UTXO {
	return model.UTXO{
		PrevTxHash: input.PrevTxHash,
		Index:      input.Index,
	}
}

// GetInputBytes converts an input to a byte slice. With or without the signature.
func GetInputBytes(input *model.Input, withSig bool) ([]byte, error) {
	var data []byte
	prevHash, err := HexToBytes(input.PrevTxHash)
	if err != nil {
		return nil, err
	}
	data = append(data, prevHash...)
	data = append(data, Int64ToBytes(input.Index)...)
	if withSig {
		data = append(data, input.Signature...)
	}
	return data, nil
}

func GetOutputBytes(output *model.Output) []byte {
	var data []byte
	data = append(data, Float64ToBytes(output.Value)...)
	data = append(data, output.PublicKey...)
	return data
}

// GetTransactionBytes concats all inputs and outputs raw data in byte slices.
// The transaction hash is derived with withSig=false, so that filling in a
// signature does not change the identity of the transaction being signed.
func GetTransactionBytes(t *model.Transaction, withSig bool) ([]byte, error) {
	var data []byte
	for i := 0; i < len(t.Inputs); i++ {
		input := &t.Inputs[i]
		inputData, err := GetInputBytes(input, withSig)
		if err != nil {
			return nil, err
		}
		data = append(data, inputData...)
	}

	for i := 0; i < len(t.Outputs); i++ {
		output := &t.Outputs[i]
		outputData := GetOutputBytes(output)
		data = append(data, outputData...)
	}
	return data, nil
}

// GetInputDataToSignByIndex returns the message the owner of the output claimed
// by input number index has to sign: that input without its signature, followed
// by every output of the transaction.
func GetInputDataToSignByIndex(t *model.Transaction, index int) ([]byte, error) {
	var data []byte

	if index < 0 || len(t.Inputs)-1 < index {
		return nil, errors.New("index is out of the range")
	}
	input := &t.Inputs[index]
	// Don't include signature since we haven't signed it yet.
	inputData, err := GetInputBytes(input, false /*withSig=*/)
	if err != nil {
		return nil, err
	}
	data = append(data, inputData...)

	for i := 0; i < len(t.Outputs); i++ {
		output := &t.Outputs[i]
		outputData := GetOutputBytes(output)
		data = append(data, outputData...)
	}
	return data, nil
}

// HashTransaction derives the hex hash that identifies t from its
// signature-free raw bytes.
func HashTransaction(t *model.Transaction) (string, error) {
	data, err := GetTransactionBytes(t, false /*withSig=*/)
	if err != nil {
		return "", err
	}
	return BytesToHex(SHA256(data)), nil
}

// CreateCoinbaseTx mints a brand new coin of the given value owned by pk. It has
// no inputs, so it can only seed a ledger directly, it never passes settlement.
func CreateCoinbaseTx(value float64, pk []byte) (*model.Transaction, error) {
	tx := &model.Transaction{
		Outputs: []model.Output{
			{
				Value:     value,
				PublicKey: pk,
			},
		},
	}
	hash, err := HashTransaction(tx)
	if err != nil {
		return nil, err
	}
	tx.Hash = hash
	return tx, nil
}
