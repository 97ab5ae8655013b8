// Example usage of the AirSwap RFQ SDK Go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	airswap "github.com/kaifufi/airswap-rfq-sdk-go"
	"github.com/kaifufi/airswap-rfq-sdk-go/jsonrpc"
	"github.com/kaifufi/airswap-rfq-sdk-go/log"
)

func main() {
	// Settings come from RFQ_* variables or a .env file
	config, err := airswap.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := log.MustNewDefaultLogger(config.LogFormat, config.LogLevel)
	config.Logger = logger

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := airswap.NewClient(ctx, config)
	if err != nil {
		logger.Error("failed to create client", "err", err)
		os.Exit(1)
	}
	defer client.Close()

	// Example: List registered makers
	fmt.Println("Fetching makers...")
	makers, err := client.GetMakers(ctx)
	if err != nil {
		logger.Error("failed to get makers", "err", err)
		return
	}
	for _, m := range makers {
		fmt.Printf("  %s  %s  (%s)\n", m.Address.Hex(), m.URL, airswap.MakerName(m))
	}
	if len(makers) == 0 {
		return
	}

	// Example: Tokens and protocols of the first maker
	first := makers[0].Address
	fmt.Println("\nFetching maker tokens...")
	tokens, err := client.GetTokens(ctx, first)
	if err != nil {
		logger.Error("failed to get tokens", "maker", first.Hex(), "err", err)
	} else {
		for _, t := range tokens {
			fmt.Printf("  %s %s (%d decimals)\n", t.Symbol, t.Address.Hex(), t.Decimals)
		}
	}

	fmt.Println("\nFetching maker protocols...")
	protocols, err := client.GetProtocols(ctx, first)
	if err != nil {
		logger.Error("failed to get protocols", "maker", first.Hex(), "err", err)
	} else {
		fmt.Printf("Protocols: %+v\n", protocols)
	}

	// Example: Pricing ladder for WETH/USDC
	fmt.Println("\nFetching pricing...")
	usdc, errUSDC := client.Token(ctx, "USDC")
	weth, errWETH := client.Token(ctx, "WETH")
	if errUSDC == nil && errWETH == nil {
		pricing, err := client.GetPricing(ctx, first, jsonrpc.Pair{BaseToken: weth.Address, QuoteToken: usdc.Address})
		if err != nil {
			logger.Error("failed to get pricing", "maker", first.Hex(), "err", err)
		}
		for _, p := range pricing {
			if bid, ok := p.BestBid(); ok {
				fmt.Printf("  best bid %s\n", bid)
			}
			if ask, ok := p.BestAsk(); ok {
				fmt.Printf("  best ask %s\n", ask)
			}
		}
	}

	// Example: Sell 1000 USDC for WETH across every maker
	fmt.Println("\nRequesting sell quotes...")
	rows, err := client.Sell(ctx, "1000", "USDC", "WETH", nil)
	if err != nil {
		logger.Error("failed to get sell quotes", "err", err)
		return
	}
	printRows(rows)
	if best, ok := airswap.BestRow(airswap.SideSell, rows); ok {
		fmt.Printf("Best: %s gives %s WETH\n", best.MakerName, best.Amount)
	}

	// Example: Buy 0.5 WETH with USDC
	fmt.Println("\nRequesting buy quotes...")
	rows, err = client.Buy(ctx, "0.5", "USDC", "WETH", nil)
	if err != nil {
		logger.Error("failed to get buy quotes", "err", err)
		return
	}
	printRows(rows)
}

func printRows(rows []airswap.AggregatedQuoteRow) {
	for _, row := range rows {
		status := "ok"
		if !row.OK() {
			status = "error"
		}
		fmt.Printf("  %-12s %-6s %s\n", row.MakerName, status, row.Message())
	}
}
