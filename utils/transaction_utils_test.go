package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ralinc/scrooge-coin/model"
)

func testTransaction() *model.Transaction {
	return &model.Transaction{
		Inputs: []model.Input{
			{PrevTxHash: "00ab", Index: 0},
			{PrevTxHash: "00cd", Index: 2},
		},
		Outputs: []model.Output{
			{Value: 10, PublicKey: []byte{0x01}},
			{Value: 5, PublicKey: []byte{0x02}},
		},
	}
}

func TestHashIgnoresSignatures(t *testing.T) {
	tx := testTransaction()
	unsigned, err := HashTransaction(tx)
	assert.Nil(t, err)

	tx.Inputs[0].Signature = []byte{0xde, 0xad}
	signed, err := HashTransaction(tx)
	assert.Nil(t, err)
	assert.Equal(t, unsigned, signed)
}

func TestHashChangesWithContents(t *testing.T) {
	tx := testTransaction()
	before, err := HashTransaction(tx)
	assert.Nil(t, err)

	tx.Outputs[0].Value = 11
	after, err := HashTransaction(tx)
	assert.Nil(t, err)
	assert.NotEqual(t, before, after)
}

func TestGetInputDataToSignByIndex(t *testing.T) {
	tx := testTransaction()

	first, err := GetInputDataToSignByIndex(tx, 0)
	assert.Nil(t, err)
	second, err := GetInputDataToSignByIndex(tx, 1)
	assert.Nil(t, err)
	// Each input signs its own claim, so the messages differ.
	assert.NotEqual(t, first, second)

	_, err = GetInputDataToSignByIndex(tx, 2)
	assert.NotNil(t, err)
	_, err = GetInputDataToSignByIndex(tx, -1)
	assert.NotNil(t, err)
}

func TestGetInputBytesRejectsBadHash(t *testing.T) {
	input := model.Input{PrevTxHash: "not hex", Index: 0}
	_, err := GetInputBytes(&input, false)
	assert.NotNil(t, err)
}

func TestCreateCoinbaseTx(t *testing.T) {
	cb, err := CreateCoinbaseTx(25, []byte{0x0a})
	assert.Nil(t, err)
	assert.Empty(t, cb.Inputs)
	assert.Len(t, cb.Outputs, 1)
	assert.Equal(t, 25.0, cb.Outputs[0].Value)
	assert.NotEmpty(t, cb.Hash)
}

func TestCreateUtxoFromInput(t *testing.T) {
	input := model.Input{PrevTxHash: "00ab", Index: 7, Signature: []byte{0x01}}
	assert.Equal(t, model.UTXO{PrevTxHash: "00ab", Index: 7}, CreateUtxoFromInput(&input))
}
