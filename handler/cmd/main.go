package main

import (
	"flag"
	"log"

	"github.com/ralinc/scrooge-coin/config"
	"github.com/ralinc/scrooge-coin/handler"
	"github.com/ralinc/scrooge-coin/model"
	"github.com/ralinc/scrooge-coin/utils"
	"github.com/ralinc/scrooge-coin/wallet"
)

var configPath *string

func init() {
	configPath = flag.String("config_path", "handler/cmd/config.yaml", "path to the demo config")
}

// Demo run: Scrooge mints a coin for alice, alice pays bob and, in the same
// batch, tries to double spend the coin back to herself. Only the first
// transaction settles.
func main() {
	flag.Parse()

	cfg, err := config.ParseAppConfig(*configPath)
	if err != nil {
		log.Fatal("failed to parse app config: ", err)
	}
	logger := utils.NewLogger(cfg.DEBUG)
	defer logger.Sync()

	alice, err := wallet.NewWallet(cfg.KEY_BITS)
	if err != nil {
		logger.Fatalw("failed to create wallet", "err", err)
	}
	bob, err := wallet.NewWallet(cfg.KEY_BITS)
	if err != nil {
		logger.Fatalw("failed to create wallet", "err", err)
	}

	// The coinbase coin goes straight into the ledger; it never passes
	// settlement itself since it claims nothing.
	coinbase, err := utils.CreateCoinbaseTx(cfg.COINBASE_REWARD, alice.PublicKeyBytes())
	if err != nil {
		logger.Fatalw("failed to create coinbase", "err", err)
	}
	ledger := model.NewLedger()
	ledger.Add(model.UTXO{PrevTxHash: coinbase.Hash, Index: 0}, coinbase.Outputs[0])

	h := handler.New(ledger, logger)

	alice.Observe(h.LedgerSnapshot())
	payBob, err := alice.CreatePendingTransaction([]model.Output{
		{Value: cfg.COINBASE_REWARD / 2, PublicKey: bob.PublicKeyBytes()},
	})
	if err != nil {
		logger.Fatalw("failed to build transaction", "err", err)
	}
	// A conflicting spend of the very same coin, back to alice.
	paySelf, err := alice.CreatePendingTransaction(nil)
	if err != nil {
		logger.Fatalw("failed to build transaction", "err", err)
	}

	accepted := h.HandleTxs([]*model.Transaction{payBob, paySelf})
	for _, tx := range accepted {
		logger.Infow("accepted", "tx", tx.Hash)
	}

	snapshot := h.LedgerSnapshot()
	alice.Observe(snapshot)
	bob.Observe(snapshot)
	logger.Infow("settled",
		"submitted", 2,
		"accepted", len(accepted),
		"alice", alice.Balance(),
		"bob", bob.Balance(),
		"poolSize", snapshot.Size())
}
