package daemon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbull/factom-go-sdk/internal/common/logger"
	"github.com/maxbull/factom-go-sdk/pkg/client"
	"github.com/maxbull/factom-go-sdk/pkg/config"
	"github.com/maxbull/factom-go-sdk/pkg/payloads"
	"github.com/maxbull/factom-go-sdk/pkg/services/jsonrpc"
	"github.com/maxbull/factom-go-sdk/pkg/services/library"
)

const (
	testChainID        = "df3ade9eec4b08d5379cc64270c30ea7315d8a8a1a69efe2b98a60ecdd69e604"
	testChainHeadKeyMR = "cbd3d09db6defdc25dfc7d57f3479b339a077183cd67022e6d1ef6c041522b40"
	testEntryHash      = "24674e6bc3094eb773297de955ee095a05830e431da13a37382dcdc89d73c7d7"
	testTxID           = "f1d9919829fa71ce18caf1bd8659cce8a06c0026d3f3fffc61054ebb25ebeaa0"
	testFactoidAddress = "FA2jK2HcLnRdS94dEcU27rF3meoJfpUcZPSinpb7AwQvPRY6RL1Q"
	testECAddress      = "EC2DKSYyRcNWf7RS963VFYgMExoHRYLHVeCfQ9PGPmNzwrcmgm2r"
)

type rpcRequest struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
	ID     uint64         `json:"id"`
}

func writeResult(w http.ResponseWriter, id uint64, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": id, "result": result})
}

func writeError(w http.ResponseWriter, id uint64, code int64, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   map[string]any{"code": code, "message": message},
	})
}

func newService(t *testing.T, server *httptest.Server) library.Daemon {
	t.Helper()

	c, err := client.New(&config.Config{FactomdURL: server.URL, WalletdURL: server.URL})
	require.NoError(t, err)

	log, err := logger.New(false)
	require.NoError(t, err)

	return New(jsonrpc.New(c, log), log)
}

func setupTestServer(t *testing.T) (*httptest.Server, library.Daemon) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeError(w, 0, -32700, "Parse error")
			return
		}

		switch request.Method {
		case "heights":
			writeResult(w, request.ID, map[string]any{
				"directoryblockheight": 240000,
				"leaderheight":         240000,
				"entryblockheight":     240000,
				"entryheight":          239998,
			})

		case "properties":
			writeResult(w, request.ID, map[string]any{
				"factomdversion":    "6.15.0",
				"factomdapiversion": "2.0",
			})

		case "entry-credit-rate":
			writeResult(w, request.ID, map[string]any{"rate": 1000})

		case "factoid-balance":
			if request.Params["address"] != testFactoidAddress {
				writeError(w, request.ID, -32602, "Invalid params")
				return
			}
			writeResult(w, request.ID, map[string]any{"balance": 150000000})

		case "entry-credit-balance":
			if request.Params["address"] != testECAddress {
				writeError(w, request.ID, -32602, "Invalid params")
				return
			}
			writeResult(w, request.ID, map[string]any{"balance": 2000})

		case "multiple-fct-balances":
			writeResult(w, request.ID, map[string]any{
				"currentheight":   240000,
				"lastsavedheight": 239999,
				"balances": []map[string]any{
					{"ack": 150000000, "saved": 150000000, "err": ""},
				},
			})

		case "chain-head":
			if request.Params["chainid"] != testChainID {
				writeError(w, request.ID, -32009, "Chain not found")
				return
			}
			writeResult(w, request.ID, map[string]any{
				"chainhead":          testChainHeadKeyMR,
				"chaininprocesslist": false,
			})

		case "entry":
			if request.Params["hash"] != testEntryHash {
				writeError(w, request.ID, -32008, "Entry not found")
				return
			}
			writeResult(w, request.ID, map[string]any{
				"chainid": testChainID,
				"content": "466163746f6d21",
				"extids":  []string{"6d79", "6578746964"},
			})

		case "commit-chain":
			writeResult(w, request.ID, map[string]any{
				"message":     "Chain Commit Success",
				"txid":        testTxID,
				"entryhash":   testEntryHash,
				"chainidhash": testChainID,
			})

		case "reveal-entry":
			writeResult(w, request.ID, map[string]any{
				"message":   "Entry Reveal Success",
				"entryhash": testEntryHash,
				"chainid":   testChainID,
			})

		case "directory-block-head":
			writeResult(w, request.ID, map[string]any{"keymr": testChainHeadKeyMR})

		case "dblock-by-height":
			writeResult(w, request.ID, map[string]any{
				"dblock": map[string]any{
					"header": map[string]any{
						"version":    0,
						"dbheight":   request.Params["height"],
						"blockcount": 4,
					},
					"dbentries": []map[string]any{
						{"chainid": testChainID, "keymr": testChainHeadKeyMR},
					},
					"keymr": testChainHeadKeyMR,
				},
				"rawdata": "00fa92e5a2",
			})

		case "ack":
			if request.Params["chainid"] == "f" {
				writeResult(w, request.ID, map[string]any{
					"txid":                  request.Params["hash"],
					"transactiondate":       1560183000000,
					"transactiondatestring": "2019-06-10 12:10:00",
					"status":                "TransactionACK",
				})
				return
			}
			writeResult(w, request.ID, map[string]any{
				"committxid": testTxID,
				"entryhash":  request.Params["hash"],
				"commitdata": map[string]any{"status": "DBlockConfirmed"},
				"entrydata":  map[string]any{"status": "NotConfirmed"},
			})

		default:
			writeError(w, request.ID, -32601, "Method not found")
		}
	}))

	return server, newService(t, server)
}

func TestNew(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	assert.NotNil(t, service)
}

func TestHeights(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	resp, err := service.Heights(context.Background())

	assert.NoError(t, err)
	require.True(t, resp.Success())
	assert.Equal(t, int64(240000), resp.Result.DirectoryBlockHeight)
	assert.Equal(t, int64(239998), resp.Result.EntryHeight)
}

func TestProperties(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	resp, err := service.Properties(context.Background())

	assert.NoError(t, err)
	require.True(t, resp.Success())
	assert.Equal(t, "6.15.0", resp.Result.FactomdVersion)
	assert.Equal(t, "2.0", resp.Result.FactomdAPIVersion)
}

func TestBalances(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	t.Run("factoid balance", func(t *testing.T) {
		resp, err := service.FactoidBalance(context.Background(), testFactoidAddress)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, int64(150000000), resp.Result.Balance)
	})

	t.Run("entry credit balance", func(t *testing.T) {
		resp, err := service.EntryCreditBalance(context.Background(), testECAddress)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, int64(2000), resp.Result.Balance)
	})

	t.Run("invalid address is rejected by the daemon", func(t *testing.T) {
		resp, err := service.FactoidBalance(context.Background(), "not-an-address")

		assert.NoError(t, err)
		require.False(t, resp.Success())
		assert.Equal(t, int64(-32602), resp.Error.Code)
	})

	t.Run("multiple balances", func(t *testing.T) {
		resp, err := service.MultipleFactoidBalances(context.Background(), testFactoidAddress)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, int64(240000), resp.Result.CurrentHeight)
		require.Len(t, resp.Result.Balances, 1)
		assert.Equal(t, int64(150000000), resp.Result.Balances[0].Ack)
		assert.Empty(t, resp.Result.Balances[0].Err)
	})

	t.Run("entry credit rate", func(t *testing.T) {
		resp, err := service.EntryCreditRate(context.Background())

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, int64(1000), resp.Result.Rate)
	})
}

func TestChainHead(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	t.Run("existing chain", func(t *testing.T) {
		resp, err := service.ChainHead(context.Background(), testChainID)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, testChainHeadKeyMR, resp.Result.ChainHead)
		assert.False(t, resp.Result.ChainInProcessList)
	})

	t.Run("unknown chain", func(t *testing.T) {
		resp, err := service.ChainHead(context.Background(), "0000000000000000000000000000000000000000000000000000000000000000")

		assert.NoError(t, err)
		require.False(t, resp.Success())
		assert.Equal(t, "Chain not found", resp.Error.Message)
	})
}

func TestEntry(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	t.Run("existing entry", func(t *testing.T) {
		resp, err := service.Entry(context.Background(), testEntryHash)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, testChainID, resp.Result.ChainID)
		assert.Equal(t, "466163746f6d21", resp.Result.Content)
		assert.Len(t, resp.Result.ExtIDs, 2)
	})

	t.Run("unknown entry", func(t *testing.T) {
		resp, err := service.Entry(context.Background(), "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

		assert.NoError(t, err)
		require.False(t, resp.Success())
		assert.Equal(t, int64(-32008), resp.Error.Code)
	})
}

func TestCommitAndReveal(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	t.Run("commit chain", func(t *testing.T) {
		resp, err := service.CommitChain(context.Background(), "00015507b2f70bd0165d9fa19a28cfaafb6bc82f538955a98c7b7e60d79fbf92655c1bff1c76466cb9bc3f3f68c86")

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, "Chain Commit Success", resp.Result.Message)
		assert.Equal(t, testTxID, resp.Result.TxID)
	})

	t.Run("reveal entry", func(t *testing.T) {
		resp, err := service.RevealEntry(context.Background(), "007e18ca1bd0165d9fa19a28cfaafb6bc82f538955a98c7b")

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, "Entry Reveal Success", resp.Result.Message)
		assert.Equal(t, testChainID, resp.Result.ChainID)
	})
}

func TestBlockQueries(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	t.Run("directory block head", func(t *testing.T) {
		resp, err := service.DirectoryBlockHead(context.Background())

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, testChainHeadKeyMR, resp.Result.KeyMR)
	})

	t.Run("dblock by height", func(t *testing.T) {
		resp, err := service.DBlockByHeight(context.Background(), 200000)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, int64(200000), resp.Result.DBlock.Header.DBHeight)
		assert.Equal(t, testChainHeadKeyMR, resp.Result.DBlock.KeyMR)
		require.Len(t, resp.Result.DBlock.DBEntries, 1)
		assert.Equal(t, testChainID, resp.Result.DBlock.DBEntries[0].ChainID)
	})
}

func TestAcks(t *testing.T) {
	server, service := setupTestServer(t)
	defer server.Close()

	t.Run("entry ack", func(t *testing.T) {
		resp, err := service.EntryAck(context.Background(), testEntryHash, testChainID)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, testEntryHash, resp.Result.EntryHash)
		assert.Equal(t, payloads.AckStatusDBlockConfirmed, resp.Result.CommitData.Status)
		assert.Equal(t, payloads.AckStatusNotConfirmed, resp.Result.EntryData.Status)
	})

	t.Run("factoid ack", func(t *testing.T) {
		resp, err := service.FactoidAck(context.Background(), testTxID)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, testTxID, resp.Result.TxID)
		assert.Equal(t, payloads.AckStatusACK, resp.Result.Status)
	})
}

func TestWaitForAcks(t *testing.T) {
	t.Run("entry ack already landed", func(t *testing.T) {
		var polls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var request rpcRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			polls++
			writeResult(w, request.ID, map[string]any{
				"committxid": testTxID,
				"entryhash":  request.Params["hash"],
				"commitdata": map[string]any{"status": "DBlockConfirmed"},
				"entrydata":  map[string]any{"status": "TransactionACK"},
			})
		}))
		defer server.Close()
		service := newService(t, server)

		ack, err := service.WaitForEntryAck(context.Background(), testEntryHash, testChainID, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, testEntryHash, ack.EntryHash)
		assert.Equal(t, payloads.AckStatusACK, ack.EntryData.Status)
		assert.Equal(t, 1, polls)
	})

	t.Run("factoid ack already landed", func(t *testing.T) {
		server, service := setupTestServer(t)
		defer server.Close()

		ack, err := service.WaitForFactoidAck(context.Background(), testTxID, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, testTxID, ack.TxID)
		assert.True(t, ack.Status.Confirmed())
	})

	t.Run("unconfirmed entry runs out the deadline", func(t *testing.T) {
		server, service := setupTestServer(t)
		defer server.Close()

		ack, err := service.WaitForEntryAck(context.Background(), testEntryHash, testChainID, time.Nanosecond)

		assert.Nil(t, ack)
		assert.ErrorContains(t, err, "not acknowledged")
	})

	t.Run("cancelled context stops the wait", func(t *testing.T) {
		server, service := setupTestServer(t)
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.WaitForFactoidAck(ctx, testTxID, time.Minute)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRequestParams(t *testing.T) {
	t.Run("receipt carries the raw entry flag", func(t *testing.T) {
		var captured rpcRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			writeResult(w, captured.ID, map[string]any{
				"receipt": map[string]any{
					"entry":               map[string]any{"entryhash": testEntryHash},
					"entryblockkeymr":     testChainHeadKeyMR,
					"directoryblockkeymr": testChainHeadKeyMR,
				},
			})
		}))
		defer server.Close()
		service := newService(t, server)

		resp, err := service.Receipt(context.Background(), testEntryHash, true)

		assert.NoError(t, err)
		require.True(t, resp.Success())
		assert.Equal(t, "receipt", captured.Method)
		assert.Equal(t, testEntryHash, captured.Params["hash"])
		assert.Equal(t, true, captured.Params["includerawentry"])
	})

	t.Run("pending transactions omits an empty address filter", func(t *testing.T) {
		var captured rpcRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			writeResult(w, captured.ID, []map[string]any{})
		}))
		defer server.Close()
		service := newService(t, server)

		_, err := service.PendingTransactions(context.Background(), "")

		assert.NoError(t, err)
		assert.NotContains(t, captured.Params, "address")

		_, err = service.PendingTransactions(context.Background(), testFactoidAddress)

		assert.NoError(t, err)
		assert.Equal(t, testFactoidAddress, captured.Params["address"])
	})

	t.Run("factoid ack pins the chainid to f", func(t *testing.T) {
		var captured rpcRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			writeResult(w, captured.ID, map[string]any{"txid": testTxID, "status": "Unknown"})
		}))
		defer server.Close()
		service := newService(t, server)

		_, err := service.FactoidAck(context.Background(), testTxID)

		assert.NoError(t, err)
		assert.Equal(t, "ack", captured.Method)
		assert.Equal(t, "f", captured.Params["chainid"])
	})

	t.Run("anchors by height sends a numeric height", func(t *testing.T) {
		var captured rpcRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			writeResult(w, captured.ID, map[string]any{
				"directoryblockheight": 200000,
				"bitcoin":              false,
				"ethereum":             false,
			})
		}))
		defer server.Close()
		service := newService(t, server)

		_, err := service.AnchorsByHeight(context.Background(), 200000)

		assert.NoError(t, err)
		assert.Equal(t, "anchors", captured.Method)
		assert.Equal(t, float64(200000), captured.Params["height"])
		assert.NotContains(t, captured.Params, "hash")
	})
}
