package payloads

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorsUnmarshal(t *testing.T) {
	t.Run("unanchored chains come back as the literal false", func(t *testing.T) {
		body := []byte(`{
			"directoryblockheight": 220000,
			"directoryblockkeymr": "02b2d91d1b5ad61f03b45f78655bbcecbd9a04f0d9d328069a01938b84ebeca8",
			"bitcoin": false,
			"ethereum": false
		}`)

		var anchors Anchors
		require.NoError(t, json.Unmarshal(body, &anchors))

		assert.Equal(t, int64(220000), anchors.DirectoryBlockHeight)
		assert.False(t, anchors.Bitcoin.Recorded)
		assert.False(t, anchors.Ethereum.Recorded)
	})

	t.Run("anchored chains come back as records", func(t *testing.T) {
		body := []byte(`{
			"directoryblockheight": 220000,
			"directoryblockkeymr": "02b2d91d1b5ad61f03b45f78655bbcecbd9a04f0d9d328069a01938b84ebeca8",
			"bitcoin": {
				"transactionhash": "e2ac71c9c0fd8edc0be8c0ba7098b77fb7d90dcca755d5b9348116f3f9d9f951",
				"blockhash": "0000000000000000002bf1c218853bc920f41f74491e3c6c143764930e061dd8"
			},
			"ethereum": {
				"recordheight": 6459022,
				"dbheightmax": 220000,
				"dbheightmin": 219000,
				"windowmr": "9d45dca8e8ce21a469c88058ad21e8d200c0d52c8b4030e56c92583771d028b8",
				"merklebranch": [
					{
						"left": "4b7a",
						"right": "ce3a",
						"top": "aa12"
					}
				],
				"contractaddress": "0xfac701d9554a008e48b6307fb90457ba3959e8a8",
				"txid": "0xf131af65d23bd0f14932ea7b768289fa2b86e9f50a2a5b1247b4e5bd1531a3bc",
				"blockhash": "0x24e2b30c4b4cdc661b99a0a3c38350d0c6a0da22f1ddb3ba80a7fed5b12e9a72",
				"txindex": 41
			}
		}`)

		var anchors Anchors
		require.NoError(t, json.Unmarshal(body, &anchors))

		assert.True(t, anchors.Bitcoin.Recorded)
		assert.Equal(t,
			"e2ac71c9c0fd8edc0be8c0ba7098b77fb7d90dcca755d5b9348116f3f9d9f951",
			anchors.Bitcoin.TransactionHash)

		assert.True(t, anchors.Ethereum.Recorded)
		assert.Equal(t, int64(6459022), anchors.Ethereum.RecordHeight)
		assert.Len(t, anchors.Ethereum.MerkleBranch, 1)
		assert.Equal(t, int64(41), anchors.Ethereum.TxIndex)
	})

	t.Run("mixed anchoring states", func(t *testing.T) {
		body := []byte(`{
			"directoryblockheight": 1,
			"directoryblockkeymr": "aa",
			"bitcoin": {"transactionhash": "bb", "blockhash": "cc"},
			"ethereum": false
		}`)

		var anchors Anchors
		require.NoError(t, json.Unmarshal(body, &anchors))

		assert.True(t, anchors.Bitcoin.Recorded)
		assert.False(t, anchors.Ethereum.Recorded)
	})
}
