package indexer

import "testing"

func TestEnumerationsAreCopies(t *testing.T) {
	blockchains := Blockchains()
	blockchains[0] = "mutated"
	if Blockchains()[0] != BlockchainEthereum {
		t.Fatal("Blockchains must return a copy")
	}

	tokens := Tokens()
	tokens[0] = "mutated"
	if Tokens()[0] != TokenUSDC {
		t.Fatal("Tokens must return a copy")
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupportedBlockchain(BlockchainSolana) || IsSupportedBlockchain("Solana") {
		t.Fatal("unexpected blockchain membership")
	}
	if !IsSupportedToken(TokenPYUSD) || IsSupportedToken("btc") {
		t.Fatal("unexpected token membership")
	}
}
