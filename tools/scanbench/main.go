// scanbench drives load against a running custody API: it registers a batch
// of items, then submits signed custody scans for each one with freshly
// generated handler keys, and reports latency percentiles per operation.
//
// Every write waits for ledger confirmation server-side, so throughput here
// measures the full register/verify/confirm path, not just HTTP handling.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chaintrace/custody-api/internal/custody"
)

func main() {
	cfg := parseFlags()
	if cfg.ContractAddress == "" {
		fmt.Fprintln(os.Stderr, "-contract is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\ninterrupted, finishing in-flight requests")
		cancel()
	}()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	registerStats := &opStats{}
	scanStats := &opStats{}

	jobs := make(chan uint64)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for itemID := range jobs {
				runItem(ctx, cfg, httpClient, itemID, registerStats, scanStats)
			}
		}()
	}

	start := time.Now()
	for i := 0; i < cfg.Items; i++ {
		select {
		case jobs <- rand.Uint64():
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	fmt.Printf("\ncompleted in %v\n", time.Since(start).Round(time.Millisecond))
	registerStats.report("register")
	scanStats.report("scan")
}

// runItem registers one item and submits the configured number of signed scans
func runItem(ctx context.Context, cfg Config, client *http.Client, itemID uint64, registerStats, scanStats *opStats) {
	now := time.Now()
	began := time.Now()
	err := postJSON(ctx, client, cfg.APIURL+"/items/register", map[string]interface{}{
		"item_id":  itemID,
		"name":     fmt.Sprintf("Bench Item %d", itemID),
		"location": "Bench Origin",
		"date":     now.Format("2006-01-02"),
		"time":     now.Format("15:04"),
	}, cfg.Debug)
	registerStats.record(time.Since(began), err == nil)
	if err != nil {
		if cfg.Debug {
			fmt.Fprintf(os.Stderr, "register %d: %v\n", itemID, err)
		}
		return
	}

	for i := 0; i < cfg.ScansPerItem; i++ {
		if ctx.Err() != nil {
			return
		}

		key, err := crypto.GenerateKey()
		if err != nil {
			scanStats.record(0, false)
			continue
		}
		handler := crypto.PubkeyToAddress(key.PublicKey)
		location := fmt.Sprintf("Bench Stop %d", i+1)

		digest, err := custody.ScanDigest(new(big.Int).SetUint64(cfg.ChainID), cfg.ContractAddress, itemID, location)
		if err != nil {
			scanStats.record(0, false)
			continue
		}
		sig, err := crypto.Sign(digest, key)
		if err != nil {
			scanStats.record(0, false)
			continue
		}

		began = time.Now()
		err = postJSON(ctx, client, cfg.APIURL+"/scans", map[string]interface{}{
			"item_id":   itemID,
			"location":  location,
			"handler":   handler.Hex(),
			"signature": hexutil.Encode(sig),
		}, cfg.Debug)
		scanStats.record(time.Since(began), err == nil)
		if err != nil && cfg.Debug {
			fmt.Fprintf(os.Stderr, "scan %d/%d: %v\n", itemID, i+1, err)
		}
	}
}

func postJSON(ctx context.Context, client *http.Client, url string, body map[string]interface{}, debug bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %s", resp.Status, detail)
	}
	if debug {
		io.Copy(io.Discard, resp.Body)
	}
	return nil
}
