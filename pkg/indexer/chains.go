package indexer

const (
	BlockchainEthereum  = "ethereum"
	BlockchainBase      = "base"
	BlockchainArbitrum  = "arbitrum"
	BlockchainOptimism  = "optimism"
	BlockchainPolygon   = "polygon"
	BlockchainAvalanche = "avalanche"
	BlockchainBSC       = "bsc"
	BlockchainSolana    = "solana"
	BlockchainTron      = "tron"
)

const (
	TokenUSDC  = "usdc"
	TokenUSDT  = "usdt"
	TokenEURC  = "eurc"
	TokenDAI   = "dai"
	TokenPYUSD = "pyusd"
)

var supportedBlockchains = []string{
	BlockchainEthereum,
	BlockchainBase,
	BlockchainArbitrum,
	BlockchainOptimism,
	BlockchainPolygon,
	BlockchainAvalanche,
	BlockchainBSC,
	BlockchainSolana,
	BlockchainTron,
}

var supportedTokens = []string{
	TokenUSDC,
	TokenUSDT,
	TokenEURC,
	TokenDAI,
	TokenPYUSD,
}

// Blockchains returns the blockchain identifiers accepted by the server.
func Blockchains() []string {
	return append([]string(nil), supportedBlockchains...)
}

// Tokens returns the token identifiers accepted by the server.
func Tokens() []string {
	return append([]string(nil), supportedTokens...)
}

// IsSupportedBlockchain reports whether blockchain is one of Blockchains().
// The client never uses it to reject a request.
func IsSupportedBlockchain(blockchain string) bool {
	return contains(supportedBlockchains, blockchain)
}

// IsSupportedToken reports whether token is one of Tokens().
func IsSupportedToken(token string) bool {
	return contains(supportedTokens, token)
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
