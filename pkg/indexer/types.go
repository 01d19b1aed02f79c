package indexer

import (
	"encoding/json"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// TokenTransfer is a single indexed transfer. Fields the server sends beyond
// the documented set are kept in Extra.
type TokenTransfer struct {
	Blockchain       string `json:"blockchain"`
	BlockNumber      int64  `json:"blockNumber"`
	TransactionHash  string `json:"transactionHash"`
	TransferIndex    int64  `json:"transferIndex"`
	Token            string `json:"token"`
	Amount           string `json:"amount"`
	Timestamp        int64  `json:"timestamp"`
	TransactionIndex *int64 `json:"transactionIndex,omitempty"`
	LogIndex         *int64 `json:"logIndex,omitempty"`
	From             string `json:"from,omitempty"`
	To               string `json:"to,omitempty"`
	Label            string `json:"label,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type tokenTransferFields TokenTransfer

var tokenTransferKeys = map[string]struct{}{
	"blockchain":       {},
	"blockNumber":      {},
	"transactionHash":  {},
	"transferIndex":    {},
	"token":            {},
	"amount":           {},
	"timestamp":        {},
	"transactionIndex": {},
	"logIndex":         {},
	"from":             {},
	"to":               {},
	"label":            {},
}

// UnmarshalJSON decodes the documented fields and keeps the rest in Extra.
func (t *TokenTransfer) UnmarshalJSON(data []byte) error {
	var fields tokenTransferFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range tokenTransferKeys {
		delete(all, key)
	}
	if len(all) > 0 {
		fields.Extra = all
	} else {
		fields.Extra = nil
	}
	*t = TokenTransfer(fields)
	return nil
}

// MarshalJSON writes the documented fields followed by Extra.
func (t TokenTransfer) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(tokenTransferFields(t))
	if err != nil || len(t.Extra) == 0 {
		return payload, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(payload, &merged); err != nil {
		return nil, err
	}
	for key, value := range t.Extra {
		if _, known := merged[key]; !known {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

type TokenBalance struct {
	Blockchain string `json:"blockchain"`
	Token      string `json:"token"`
	Amount     string `json:"amount"`
}

type TokenTransfersResponse struct {
	Transfers []TokenTransfer `json:"transfers"`
}

type TokenBalanceResponse struct {
	TokenBalance TokenBalance `json:"tokenBalance"`
}

// TransferQueryOptions narrows a transfer history query. Nil fields are not sent.
type TransferQueryOptions struct {
	Limit  *int64
	FromTs *int64
	ToTs   *int64
}

type BatchTokenTransfersRequestItem struct {
	Blockchain string `json:"blockchain"`
	Token      string `json:"token"`
	Address    string `json:"address"`
	Limit      *int64 `json:"limit,omitempty"`
	FromTs     *int64 `json:"fromTs,omitempty"`
	ToTs       *int64 `json:"toTs,omitempty"`
}

type BatchTokenBalanceRequestItem struct {
	Blockchain string `json:"blockchain"`
	Token      string `json:"token"`
	Address    string `json:"address"`
}

// APIErrorPayload is the error body returned by the server, both for whole
// requests and for individual batch slots.
type APIErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Int64 returns a pointer to value, for use in TransferQueryOptions and batch items.
func Int64(value int64) *int64 {
	return &value
}
