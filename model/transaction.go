package model

type Input struct {
	// Hash of the transaction that produced the coin being spent.
	PrevTxHash string
	// The index of the output in that transaction. Together with PrevTxHash, it identifies the unique output.
	Index int64
	// Signature using the previous owner's private key.
	Signature []byte
}

type Output struct {
	// How much value this output carries.
	Value float64
	// Public key of the receiver, in the form of bytes.
	PublicKey []byte
}

type Transaction struct {
	// Hash of this transaction in hex. We use this to uniquely identify the transaction.
	Hash string
	// All inputs of this transaction.
	Inputs []Input
	// All outputs of this transaction.
	Outputs []Output
}
