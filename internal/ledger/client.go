// Package ledger is a thin JSON-RPC client for the external chain node.
// The service treats the ledger as the sole source of truth and makes no
// assumption about freshness beyond a point-in-time snapshot.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shizuku355/suiquest-jp/pkg/retry"
)

// Default query page size for event notifications
const defaultQueryLimit = 50

// Config holds ledger client configuration.
type Config struct {
	// RPCURL is the full node JSON-RPC endpoint
	RPCURL string
	// Timeout is the per-request HTTP timeout (default: 10s)
	Timeout time.Duration
	// Retry configures backoff for transient transport failures
	Retry *retry.Config
}

// Client calls the ledger node over JSON-RPC 2.0.
type Client struct {
	rpcURL     string
	httpClient *http.Client
	retrier    *retry.Retrier
}

// NewClient creates a new ledger client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	retryCfg := cfg.Retry
	if retryCfg == nil {
		retryCfg = &retry.Config{
			MaxRetries:      2,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2.0,
			JitterFactor:    0.1,
		}
	}

	return &Client{
		rpcURL: cfg.RPCURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retrier: retry.New(retryCfg),
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error,omitempty"`
}

// call performs one JSON-RPC request with retry on transport failures.
// RPC-level errors from the node are permanent: repeating the same call
// will not change the node's answer.
func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode rpc request: %w", err)
	}

	op := func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Permanent(err)
			}
			return err
		}

		var rpcResp rpcResponse
		if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
			return fmt.Errorf("failed to decode rpc response: %w", err)
		}
		if rpcResp.Error != nil {
			return retry.Permanent(rpcResp.Error)
		}

		if result != nil {
			if err := json.Unmarshal(rpcResp.Result, result); err != nil {
				return retry.Permanent(fmt.Errorf("failed to decode rpc result: %w", err))
			}
		}
		return nil
	}

	res := c.retrier.Do(ctx, op)
	if res.Err != nil {
		if res.LastError != nil {
			return fmt.Errorf("%s failed after %d attempts: %w", method, res.Attempts, res.LastError)
		}
		return fmt.Errorf("%s failed: %w", method, res.Err)
	}
	return nil
}

// QueryEventNotifications returns notifications of the given move event
// type, newest first, up to limit (defaults to 50).
func (c *Client) QueryEventNotifications(ctx context.Context, eventType string, limit int) ([]EventNotification, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	var result struct {
		Data []EventNotification `json:"data"`
	}
	params := []interface{}{
		map[string]interface{}{"MoveEventType": eventType},
		nil,
		limit,
		true, // descending: newest notifications first
	}
	if err := c.call(ctx, "suix_queryEvents", params, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// MultiGetObjects fetches object contents for the given ids in one batch.
// The result preserves input order; missing objects come back with nil Data.
func (c *Client) MultiGetObjects(ctx context.Context, ids []string) ([]ObjectResult, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []ObjectResult
	params := []interface{}{
		ids,
		map[string]interface{}{"showContent": true},
	}
	if err := c.call(ctx, "sui_multiGetObjects", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetOwnedObjects lists objects of the given struct type owned by owner.
func (c *Client) GetOwnedObjects(ctx context.Context, owner, structType string) ([]ObjectResult, error) {
	var result struct {
		Data []ObjectResult `json:"data"`
	}
	params := []interface{}{
		owner,
		map[string]interface{}{
			"filter":  map[string]interface{}{"StructType": structType},
			"options": map[string]interface{}{"showContent": true, "showDisplay": true},
		},
	}
	if err := c.call(ctx, "suix_getOwnedObjects", params, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetBalance returns the total base-coin balance of an address.
func (c *Client) GetBalance(ctx context.Context, owner string) (*Balance, error) {
	var result Balance
	if err := c.call(ctx, "suix_getBalance", []interface{}{owner}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExecuteTransaction relays signed transaction bytes to the node and
// returns the digest and execution status. The service never signs;
// txBytes and signature come from the caller's wallet.
func (c *Client) ExecuteTransaction(ctx context.Context, txBytes, signature string) (*TransactionResult, error) {
	var result struct {
		Digest  string `json:"digest"`
		Effects *struct {
			Status struct {
				Status string `json:"status"`
				Error  string `json:"error,omitempty"`
			} `json:"status"`
		} `json:"effects,omitempty"`
	}
	params := []interface{}{
		txBytes,
		[]string{signature},
		map[string]interface{}{"showEffects": true},
		"WaitForLocalExecution",
	}
	if err := c.call(ctx, "sui_executeTransactionBlock", params, &result); err != nil {
		return nil, err
	}

	tx := &TransactionResult{Digest: result.Digest, Status: "success"}
	if result.Effects != nil {
		tx.Status = result.Effects.Status.Status
		if result.Effects.Status.Status == "failure" {
			return tx, fmt.Errorf("transaction %s failed: %s", result.Digest, result.Effects.Status.Error)
		}
	}
	return tx, nil
}

// HealthCheck verifies the node answers RPC calls.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var version struct {
		APIVersion string `json:"apiVersion"`
	}
	if err := c.call(ctx, "rpc.discover", nil, &version); err != nil {
		return fmt.Errorf("ledger health check failed: %w", err)
	}
	return nil
}
