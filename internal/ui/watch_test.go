package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/store"
)

const (
	headBody   = `{"chain_id":"celestia","last_height":123456,"total_tx":1000,"total_fee":"2500000"}`
	blocksBody = `[{"height":123456,"hash":"AABBCCDDEEFF00112233","stats":{"tx_count":3,"blobs_size":2048,"fee":"1500000"}},{"height":123455,"hash":"FFEE"}]`
)

func explorerServer(t *testing.T, headCode int) *explorer.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/head", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(headCode)
		w.Write([]byte(headBody)) //nolint:errcheck
	})
	mux.HandleFunc("/v1/block", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(blocksBody)) //nolint:errcheck
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return explorer.New(srv.URL + "/v1")
}

func TestPollFillsHeadAndBlocks(t *testing.T) {
	msg := Poll(context.Background(), explorerServer(t, http.StatusOK), 10)

	require.NoError(t, msg.Err)
	require.NotNil(t, msg.Head)
	assert.Equal(t, uint64(123456), msg.Head.LastHeight)
	require.Len(t, msg.Blocks, 2)
	assert.Equal(t, uint64(123455), msg.Blocks[1].Height)
}

func TestPollKeepsPartialResultOnError(t *testing.T) {
	msg := Poll(context.Background(), explorerServer(t, http.StatusBadGateway), 10)

	require.Error(t, msg.Err)
	assert.Contains(t, msg.Err.Error(), "head")
	var apiErr *explorer.APIError
	assert.True(t, errors.As(msg.Err, &apiErr))
	assert.Nil(t, msg.Head)
	assert.Len(t, msg.Blocks, 2)
}

func TestWatchModelWritesPollIntoStore(t *testing.T) {
	app := store.New()
	m := NewWatchModel(nil, app, "mainnet", time.Second, 10)

	head := &explorer.Head{LastHeight: 42}
	blocks := []explorer.Block{{Height: 42}, {Height: 41}}
	next, cmd := m.Update(PollMsg{Head: head, Blocks: blocks, At: time.Now()})

	assert.NotNil(t, cmd, "a follow-up poll must be scheduled")
	assert.Equal(t, uint64(42), app.Head().LastHeight)
	assert.Len(t, app.LatestBlocks(), 2)

	view := next.View()
	assert.Contains(t, view, "mainnet")
	assert.Contains(t, view, "#42")
	assert.Contains(t, view, "41")
}

func TestWatchModelErrorKeepsPreviousState(t *testing.T) {
	app := store.New()
	app.SetHead(&explorer.Head{LastHeight: 7})
	m := NewWatchModel(nil, app, "mocha", time.Second, 10)

	next, _ := m.Update(PollMsg{Err: errors.New("head: boom"), At: time.Now()})

	assert.Equal(t, uint64(7), app.Head().LastHeight)
	assert.Contains(t, next.View(), "boom")
}

func TestWatchModelQuit(t *testing.T) {
	m := NewWatchModel(nil, store.New(), "mainnet", time.Second, 10)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.True(t, next.(WatchModel).Quitting)
	assert.Empty(t, next.View())
}

func TestWatchModelRefreshIgnoredWhileFetching(t *testing.T) {
	m := NewWatchModel(nil, store.New(), "mainnet", time.Second, 10)
	// A fresh model is already fetching its first round.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd)
}

func TestWatchModelEmptyView(t *testing.T) {
	m := NewWatchModel(nil, store.New(), "arabica", time.Second, 10)
	view := m.View()
	assert.Contains(t, view, "arabica")
	assert.Contains(t, view, "Waiting for blocks")
}

func TestBlocksTableFormatsStats(t *testing.T) {
	out := BlocksTable([]explorer.Block{
		{Height: 1234567, Hash: "AABBCCDDEEFF00112233", Stats: &explorer.BlockStats{TxCount: 3, BlobsSize: 2048, Fee: "1500000"}},
		{Height: 1, Hash: "FF"},
	})
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "AABBCC…2233")
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "—")
}

func TestHeadPairs(t *testing.T) {
	pairs := HeadPairs(&explorer.Head{ChainID: "celestia", LastHeight: 1000, TotalFee: "2500000"})
	flat := map[string]string{}
	for _, p := range pairs {
		flat[p[0]] = p[1]
	}
	assert.Equal(t, "celestia", flat["Chain"])
	assert.Equal(t, "#1,000", flat["Height"])
	assert.Equal(t, "2.50 TIA", flat["Total fees"])
	assert.Equal(t, "0 TIA", flat["Total supply"])
}

func TestHeadPairsKeepTwoDecimals(t *testing.T) {
	pairs := HeadPairs(&explorer.Head{TotalFee: "123000000", TotalSupply: "1000000000000000"})
	flat := map[string]string{}
	for _, p := range pairs {
		flat[p[0]] = p[1]
	}
	assert.Equal(t, "123.00 TIA", flat["Total fees"])
	assert.Equal(t, "1,000,000,000.00 TIA", flat["Total supply"])
}
