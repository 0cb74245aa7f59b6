package explorer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Head is the chain state returned by /head.
type Head struct {
	ID              uint64    `json:"id"               yaml:"id"`
	Name            string    `json:"name"             yaml:"name"`
	LastHeight      uint64    `json:"last_height"      yaml:"last_height"`
	LastHash        string    `json:"last_hash"        yaml:"last_hash"`
	LastTime        time.Time `json:"last_time"        yaml:"last_time"`
	ChainID         string    `json:"chain_id"         yaml:"chain_id"`
	TotalTx         int64     `json:"total_tx"         yaml:"total_tx"`
	TotalAccounts   int64     `json:"total_accounts"   yaml:"total_accounts"`
	TotalNamespaces int64     `json:"total_namespaces" yaml:"total_namespaces"`
	TotalBlobsSize  int64     `json:"total_blobs_size" yaml:"total_blobs_size"`
	TotalValidators int64     `json:"total_validators" yaml:"total_validators"`
	TotalFee        string    `json:"total_fee"        yaml:"total_fee"`        // utia
	TotalSupply     string    `json:"total_supply"     yaml:"total_supply"`     // utia
	TotalStake      string    `json:"total_stake"      yaml:"total_stake"`      // utia
}

// Block is a block header, with stats when requested.
type Block struct {
	ID              uint64      `json:"id"               yaml:"id"`
	Height          uint64      `json:"height"           yaml:"height"`
	Time            time.Time   `json:"time"             yaml:"time"`
	VersionBlock    string      `json:"version_block"    yaml:"version_block"`
	VersionApp      string      `json:"version_app"      yaml:"version_app"`
	MessageTypes    []string    `json:"message_types"    yaml:"message_types"`
	Hash            string      `json:"hash"             yaml:"hash"`
	ParentHash      string      `json:"parent_hash"      yaml:"parent_hash"`
	ProposerAddress string      `json:"proposer_address" yaml:"proposer_address"`
	Stats           *BlockStats `json:"stats,omitempty"  yaml:"stats,omitempty"`
}

// BlockStats are the aggregates attached with stats=true.
type BlockStats struct {
	TxCount       int64  `json:"tx_count"       yaml:"tx_count"`
	EventsCount   int64  `json:"events_count"   yaml:"events_count"`
	BlobsSize     int64  `json:"blobs_size"     yaml:"blobs_size"`
	BlobsCount    int64  `json:"blobs_count"    yaml:"blobs_count"`
	BytesInBlock  int64  `json:"bytes_in_block" yaml:"bytes_in_block"`
	BlockTime     int64  `json:"block_time"     yaml:"block_time"` // milliseconds
	Fee           string `json:"fee"            yaml:"fee"`        // utia
	SupplyChange  string `json:"supply_change"  yaml:"supply_change"`
	InflationRate string `json:"inflation_rate" yaml:"inflation_rate"`
}

// Namespace is a namespace record.
type Namespace struct {
	ID              uint64    `json:"id"                yaml:"id"`
	NamespaceID     string    `json:"namespace_id"      yaml:"namespace_id"`
	Hash            string    `json:"hash"              yaml:"hash"`
	Version         int       `json:"version"           yaml:"version"`
	Size            int64     `json:"size"              yaml:"size"`
	BlobsCount      int64     `json:"blobs_count"       yaml:"blobs_count"`
	PfbCount        int64     `json:"pfb_count"         yaml:"pfb_count"`
	Reserved        bool      `json:"reserved"          yaml:"reserved"`
	LastHeight      uint64    `json:"last_height"       yaml:"last_height"`
	LastMessageTime time.Time `json:"last_message_time" yaml:"last_message_time"`
}

// NamespaceMessage is a namespace entry of a block listing.
type NamespaceMessage struct {
	ID        uint64     `json:"id"                  yaml:"id"`
	Height    uint64     `json:"height"              yaml:"height"`
	Time      time.Time  `json:"time"                yaml:"time"`
	Position  int        `json:"position"            yaml:"position"`
	Namespace *Namespace `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// Blob is the payload returned by /namespace_by_hash.
type Blob struct {
	Namespace    string `json:"namespace"     yaml:"namespace"`
	Data         string `json:"data"          yaml:"data"` // base64
	ShareVersion int    `json:"share_version" yaml:"share_version"`
	Commitment   string `json:"commitment"    yaml:"commitment"`
}

// SearchResult is one hit of /search. Result depends on Type.
type SearchResult struct {
	Type   string          `json:"type"   yaml:"type"`
	Result json.RawMessage `json:"result" yaml:"-"`
}

// DecodeSearch accepts both the single-object and the list response shapes.
func DecodeSearch(f *Fetch) ([]SearchResult, error) {
	data, err := f.Result()
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var out []SearchResult
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decoding search results: %w", err)
		}
		return out, nil
	}
	var one SearchResult
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decoding search result: %w", err)
	}
	if one.Type == "" {
		return nil, nil
	}
	return []SearchResult{one}, nil
}
