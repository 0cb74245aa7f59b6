package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

var fixtures = map[string]string{
	"/v1/head":                     `{"chain_id":"celestia","last_height":1500000,"total_tx":42000,"total_fee":"123000000","total_supply":"1000000000000000"}`,
	"/v1/block":                    `[{"height":1500000,"hash":"AABBCCDDEEFF00112233","stats":{"tx_count":4,"blobs_size":4096,"fee":"2000000"}}]`,
	"/v1/block/77":                 `{"height":77,"hash":"BEEF","version_block":"11","version_app":"1","message_types":["MsgSend"],"stats":{"tx_count":1,"fee":"1500000","block_time":11800}}`,
	"/v1/block/77/namespace":       `[{"id":1,"height":77,"position":0,"namespace":{"namespace_id":"000000000000000000000000000000000000000000000000427275","size":512}}]`,
	"/v1/block/77/namespace/count": `3`,
	"/v1/namespace":                `[{"namespace_id":"00000000000000000000000000000000000000000000000000ABCDEF","version":0,"size":2048,"pfb_count":12,"last_height":1499999}]`,
	"/v1/namespace/count":          `9876`,
	"/v1/namespace/active":         `[]`,
	"/v1/search":                   `{"type":"block","result":{"height":77}}`,
}

type apiRecorder struct {
	mu      sync.Mutex
	queries map[string]string
}

func (r *apiRecorder) query(path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries[path]
}

func apiServer(t *testing.T) (*httptest.Server, *apiRecorder) {
	t.Helper()
	rec := &apiRecorder{queries: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.queries[r.URL.Path] = r.URL.RawQuery
		rec.mu.Unlock()

		if body, ok := fixtures[r.URL.Path]; ok {
			w.Write([]byte(body)) //nolint:errcheck
			return
		}
		if len(r.URL.Path) > len("/v1/namespace_by_hash/") && r.URL.Path[:len("/v1/namespace_by_hash/")] == "/v1/namespace_by_hash/" {
			w.Write([]byte(`{"namespace":"AAAA","commitment":"3q2+7w==","share_version":0,"data":"aGVsbG8="}`)) //nolint:errcheck
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue) //nolint:errcheck
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI against the fixture server in a fresh config dir.
func run(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	full := append([]string{"--config", t.TempDir()}, args...)
	if apiURL != "" {
		full = append(full, "--api", apiURL+"/v1")
	}
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return out.String(), err
}

// ---------------------------------------------------------------------------
// head / blocks / block
// ---------------------------------------------------------------------------

func TestHeadTable(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "head")
	require.NoError(t, err)

	assert.Contains(t, out, "Chain Head")
	assert.Contains(t, out, "#1,500,000")
	assert.Contains(t, out, "42,000")
	assert.Contains(t, out, "123.00 TIA")
	assert.Contains(t, out, "1,000,000,000.00 TIA")
	require.NotNil(t, app.Head())
	assert.Equal(t, uint64(1500000), app.Head().LastHeight)
}

func TestHeadJSONPassthrough(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "head", "-o", "json")
	require.NoError(t, err)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "celestia", v["chain_id"])
	require.NotNil(t, app.Head())
	assert.Equal(t, "celestia", app.Head().ChainID)
}

func TestHeadYAML(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "head", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "chain_id: celestia")
}

func TestBlocksUsesConfigLimit(t *testing.T) {
	srv, rec := apiServer(t)
	out, err := run(t, srv.URL, "blocks")
	require.NoError(t, err)

	assert.Contains(t, out, "1,500,000")
	assert.Contains(t, out, "AABBCC…2233")
	assert.Contains(t, out, "2.00")
	assert.Equal(t, "limit=10&sort=desc&stats=true", rec.query("/v1/block"))
	assert.Len(t, app.LatestBlocks(), 1)
}

func TestBlocksYAMLStillFillsStore(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "blocks", "-o", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "hash: AABBCCDDEEFF00112233")
	require.Len(t, app.LatestBlocks(), 1)
	assert.Equal(t, "AABBCCDDEEFF00112233", app.LatestBlocks()[0].Hash)
}

func TestBlocksFlags(t *testing.T) {
	srv, rec := apiServer(t)
	_, err := run(t, srv.URL, "blocks", "--limit", "3", "--offset", "6")
	require.NoError(t, err)
	assert.Equal(t, "limit=3&offset=6&sort=desc&stats=true", rec.query("/v1/block"))
}

func TestBlockByHeight(t *testing.T) {
	srv, rec := apiServer(t)
	out, err := run(t, srv.URL, "block", "77")
	require.NoError(t, err)

	assert.Contains(t, out, "Block #77")
	assert.Contains(t, out, "BEEF")
	assert.Contains(t, out, "MsgSend")
	assert.Contains(t, out, "1.50 TIA")
	assert.Contains(t, out, "11.8s")
	assert.Equal(t, "stats=true", rec.query("/v1/block/77"))
}

func TestBlockInvalidHeight(t *testing.T) {
	srv, _ := apiServer(t)
	_, err := run(t, srv.URL, "block", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid height")
}

func TestBlockNotFound(t *testing.T) {
	srv, _ := apiServer(t)
	_, err := run(t, srv.URL, "block", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestBlockNamespaces(t *testing.T) {
	srv, rec := apiServer(t)
	out, err := run(t, srv.URL, "block", "namespaces", "77", "--sort", "asc")
	require.NoError(t, err)

	assert.Contains(t, out, "1 message(s)")
	assert.Contains(t, out, "512 B")
	assert.Equal(t, "limit=10&sort=asc", rec.query("/v1/block/77/namespace"))
}

func TestBlockNamespacesCount(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "block", "namespaces-count", "77")
	require.NoError(t, err)
	assert.Contains(t, out, "Namespaces in block #77:")
	assert.Contains(t, out, "3")
}

// ---------------------------------------------------------------------------
// namespaces / namespace / search
// ---------------------------------------------------------------------------

func TestNamespacesWithMsgType(t *testing.T) {
	srv, rec := apiServer(t)
	out, err := run(t, srv.URL, "namespaces", "--msg-type", "MsgPayForBlobs", "--limit", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "1 namespace(s)")
	assert.Contains(t, out, "2.0 KiB")
	assert.Equal(t, "limit=5&msg_type=MsgPayForBlobs", rec.query("/v1/namespace"))
}

func TestNamespacesCount(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "namespaces", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "9876")
}

func TestNamespacesActiveEmpty(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "namespaces", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "0 namespace(s)")
}

func TestNamespaceBlob(t *testing.T) {
	srv, _ := apiServer(t)
	out, err := run(t, srv.URL, "namespace", "AAAA", "12", "3q2+7w==")
	require.NoError(t, err)

	assert.Contains(t, out, "Blob")
	assert.Contains(t, out, "3q2+7w==")
	assert.Contains(t, out, "5 B")
}

func TestSearch(t *testing.T) {
	srv, rec := apiServer(t)
	out, err := run(t, srv.URL, "search", "77")
	require.NoError(t, err)

	assert.Contains(t, out, "block")
	assert.Contains(t, out, `"height":77`)
	assert.Equal(t, "query=77", rec.query("/v1/search"))
}

// ---------------------------------------------------------------------------
// convert / config
// ---------------------------------------------------------------------------

func TestConvertTia(t *testing.T) {
	out, err := run(t, "", "convert", "tia", "2000000")
	require.NoError(t, err)
	assert.Contains(t, out, "2.00 TIA")

	out, err = run(t, "", "convert", "tia", "1234000000")
	require.NoError(t, err)
	assert.Contains(t, out, "1,234.00 TIA")
}

func TestConvertTiaJSON(t *testing.T) {
	out, err := run(t, "", "convert", "tia", "1500000", "-o", "json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "1.50", v["tia"])
}

func TestConvertComma(t *testing.T) {
	out, err := run(t, "", "convert", "comma", "1000.5")
	require.NoError(t, err)
	assert.Equal(t, "1,000.50\n", out)

	out, err = run(t, "", "convert", "comma", "1000000", "--symbol", " ")
	require.NoError(t, err)
	assert.Equal(t, "1 000 000\n", out)
}

func TestConfigSetPersists(t *testing.T) {
	dir := t.TempDir()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", dir, "config", "set", "network", "mocha"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "network set to")

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"network": "mocha"`)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	_, err := run(t, "", "config", "set", "colour", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigListJSON(t *testing.T) {
	out, err := run(t, "", "config", "list", "-o", "json")
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "mainnet", v["network"])
}

func TestConfigNetworks(t *testing.T) {
	out, err := run(t, "", "config", "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "https://api-mocha.celenium.io/v1")
}

// ---------------------------------------------------------------------------
// root flags
// ---------------------------------------------------------------------------

func TestUnknownOutputRejected(t *testing.T) {
	_, err := run(t, "", "convert", "tia", "1", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output")
}

func TestUnknownNetworkRejected(t *testing.T) {
	_, err := run(t, "", "head", "--network", "devnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown network")
}

func TestUnreachableAPIReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := run(t, base, "head")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching head")
}
