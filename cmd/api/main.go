package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chaintrace/custody-api/internal/adapter"
	"github.com/chaintrace/custody-api/internal/api/middleware"
	"github.com/chaintrace/custody-api/internal/api/server"
	"github.com/chaintrace/custody-api/internal/config"
	"github.com/chaintrace/custody-api/internal/custody"
	"github.com/chaintrace/custody-api/internal/ledger"
	"github.com/chaintrace/custody-api/internal/logger"
	"github.com/chaintrace/custody-api/internal/qr"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "custody-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting custody tracker API")

	if !common.IsHexAddress(cfg.Ledger.ContractAddress) {
		logger.FatalCtx(ctx, "Invalid contract address", zap.String("address", cfg.Ledger.ContractAddress))
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Ledger.PrivateKey, "0x"))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to parse service private key", zap.Error(err))
	}

	// Dial the ledger node
	backend, err := adapter.NewEthBackendDialer().Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ledger RPC", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer backend.Close()

	// The live chain id anchors transaction signing and the EIP-712 domain;
	// the configured id is only a fallback for nodes that cannot report one.
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		if cfg.Ledger.ChainID == 0 {
			logger.FatalCtx(ctx, "Failed to resolve chain id and no fallback configured", zap.Error(err))
		}
		chainID = new(big.Int).SetUint64(cfg.Ledger.ChainID)
		logger.WarnCtx(ctx, "Live chain id unavailable, using configured fallback",
			zap.Error(err),
			zap.Uint64("chain_id", cfg.Ledger.ChainID))
	}
	logger.InfoCtx(ctx, "Connected to ledger",
		zap.String("rpc_url", cfg.Ledger.RPCURL),
		zap.Uint64("chain_id", chainID.Uint64()),
		zap.String("contract", cfg.Ledger.ContractAddress))

	var defaultChainID *big.Int
	if cfg.Ledger.ChainID != 0 {
		defaultChainID = new(big.Int).SetUint64(cfg.Ledger.ChainID)
	}

	ledgerClient, err := ledger.NewClient(backend, key, chainID, ledger.Config{
		ContractAddress: common.HexToAddress(cfg.Ledger.ContractAddress),
		DefaultChainID:  defaultChainID,
		ConfirmTimeout:  cfg.Ledger.ConfirmTimeout,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}

	custodyService := custody.NewService(ledgerClient, adapter.NewClock(), qr.NewEncoder())

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			APIKeys: cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, custodyService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
