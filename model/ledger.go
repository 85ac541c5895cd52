package model

import "github.com/jinzhu/copier"

// Unspent transaction output. All UTXO in circulation are aggregated as a ledger,
// which is the baseline every candidate transaction is validated against.
type UTXO struct {
	// Hex string of the transaction that produced this output.
	PrevTxHash string
	// The index of the output in that transaction. Together with PrevTxHash, it identifies the unique output.
	Index int64
}

// Ledger is simply a pool of UTXO. It has a single owner and no internal locking.
type Ledger struct {
	L map[UTXO]Output
}

func NewLedger() *Ledger {
	return &Ledger{
		L: make(map[UTXO]Output),
	}
}

// Contains reports whether the output identified by utxo is still unspent.
func (l *Ledger) Contains(utxo UTXO) bool {
	_, ok := l.L[utxo]
	return ok
}

// Get returns the output identified by utxo. Callers must check Contains first;
// looking up an absent UTXO returns the zero output.
func (l *Ledger) Get(utxo UTXO) Output {
	return l.L[utxo]
}

// Add stores output under utxo, marking it spendable.
func (l *Ledger) Add(utxo UTXO, output Output) {
	l.L[utxo] = output
}

// Remove claims utxo, it is no longer spendable afterwards.
func (l *Ledger) Remove(utxo UTXO) {
	delete(l.L, utxo)
}

func (l *Ledger) Size() int {
	return len(l.L)
}

// Copy returns a deep copy of the ledger that shares no state with the receiver.
func (l *Ledger) Copy() *Ledger {
	c := NewLedger()
	copier.CopyWithOption(&c.L, l.L, copier.Option{DeepCopy: true})
	return c
}
