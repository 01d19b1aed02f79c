package indexer

import (
	"bytes"
	"encoding/json"
)

// IsAPIError reports whether value is an object carrying the error, message
// and status keys. It accepts decoded JSON objects, raw JSON and batch items.
func IsAPIError(value any) bool {
	return hasKeys(value, "error", "message", "status")
}

// IsTokenTransfersResponse reports whether value carries a transfers key.
func IsTokenTransfersResponse(value any) bool {
	return hasKeys(value, "transfers")
}

// IsTokenBalanceResponse reports whether value carries a tokenBalance key.
func IsTokenBalanceResponse(value any) bool {
	return hasKeys(value, "tokenBalance")
}

func hasKeys(value any, keys ...string) bool {
	present, ok := objectKeys(value)
	if !ok {
		return false
	}
	for _, key := range keys {
		if _, exists := present[key]; !exists {
			return false
		}
	}
	return true
}

func objectKeys(value any) (map[string]struct{}, bool) {
	switch typed := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if typed == nil {
			return nil, false
		}
		keys := make(map[string]struct{}, len(typed))
		for key := range typed {
			keys[key] = struct{}{}
		}
		return keys, true
	case map[string]json.RawMessage:
		if typed == nil {
			return nil, false
		}
		keys := make(map[string]struct{}, len(typed))
		for key := range typed {
			keys[key] = struct{}{}
		}
		return keys, true
	case json.RawMessage:
		return rawObjectKeys(typed)
	case []byte:
		return rawObjectKeys(typed)
	case string:
		return rawObjectKeys([]byte(typed))
	case BatchTokenTransfersItem:
		return rawObjectKeys(typed.raw)
	case *BatchTokenTransfersItem:
		if typed == nil {
			return nil, false
		}
		return rawObjectKeys(typed.raw)
	case BatchTokenBalanceItem:
		return rawObjectKeys(typed.raw)
	case *BatchTokenBalanceItem:
		if typed == nil {
			return nil, false
		}
		return rawObjectKeys(typed.raw)
	default:
		payload, err := json.Marshal(typed)
		if err != nil {
			return nil, false
		}
		return rawObjectKeys(payload)
	}
}

func rawObjectKeys(raw []byte) (map[string]struct{}, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err != nil {
		return nil, false
	}
	keys := make(map[string]struct{}, len(object))
	for key := range object {
		keys[key] = struct{}{}
	}
	return keys, true
}

// BatchTokenTransfersItem is one slot of a batch transfers response. It is
// either a transfers result or an error payload; the raw JSON is kept and
// classified by the keys it carries, error keys first.
type BatchTokenTransfersItem struct {
	raw json.RawMessage
}

func (i *BatchTokenTransfersItem) UnmarshalJSON(data []byte) error {
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (i BatchTokenTransfersItem) MarshalJSON() ([]byte, error) {
	if len(i.raw) == 0 {
		return []byte("null"), nil
	}
	return i.raw, nil
}

// Raw returns the item exactly as the server sent it.
func (i BatchTokenTransfersItem) Raw() json.RawMessage {
	return i.raw
}

func (i BatchTokenTransfersItem) IsError() bool {
	return IsAPIError(i.raw)
}

// APIError returns the slot's error payload when the slot failed.
func (i BatchTokenTransfersItem) APIError() (*APIErrorPayload, bool) {
	return decodeErrorPayload(i.raw)
}

// Transfers returns the slot's transfers when the slot succeeded.
func (i BatchTokenTransfersItem) Transfers() ([]TokenTransfer, bool) {
	if IsAPIError(i.raw) || !IsTokenTransfersResponse(i.raw) {
		return nil, false
	}
	var response TokenTransfersResponse
	if err := json.Unmarshal(i.raw, &response); err != nil {
		return nil, false
	}
	return response.Transfers, true
}

// BatchTokenBalanceItem is one slot of a batch balances response.
type BatchTokenBalanceItem struct {
	raw json.RawMessage
}

func (i *BatchTokenBalanceItem) UnmarshalJSON(data []byte) error {
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (i BatchTokenBalanceItem) MarshalJSON() ([]byte, error) {
	if len(i.raw) == 0 {
		return []byte("null"), nil
	}
	return i.raw, nil
}

func (i BatchTokenBalanceItem) Raw() json.RawMessage {
	return i.raw
}

func (i BatchTokenBalanceItem) IsError() bool {
	return IsAPIError(i.raw)
}

func (i BatchTokenBalanceItem) APIError() (*APIErrorPayload, bool) {
	return decodeErrorPayload(i.raw)
}

// Balance returns the slot's balance when the slot succeeded.
func (i BatchTokenBalanceItem) Balance() (*TokenBalance, bool) {
	if IsAPIError(i.raw) || !IsTokenBalanceResponse(i.raw) {
		return nil, false
	}
	var response TokenBalanceResponse
	if err := json.Unmarshal(i.raw, &response); err != nil {
		return nil, false
	}
	return &response.TokenBalance, true
}

func decodeErrorPayload(raw []byte) (*APIErrorPayload, bool) {
	if !IsAPIError(raw) {
		return nil, false
	}
	var payload APIErrorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return &payload, true
}
