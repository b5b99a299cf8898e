package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/daaquan/gmocoin-connector/pkg/config"
	"github.com/daaquan/gmocoin-connector/pkg/interfaces"
	"github.com/daaquan/gmocoin-connector/pkg/logger"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
	"github.com/daaquan/gmocoin-connector/pkg/sdk"
)

func main() {
	configPath := flag.String("config", "", "TOML config file path")
	envPath := flag.String("env", ".env", "dotenv file path")
	market := flag.String("market", string(schema.FX), "market for ticker and stream: crypto or fx")
	symbol := flag.String("symbol", "", "symbol to stream ticker updates for, e.g. USD_JPY")
	count := flag.Int("n", 5, "number of stream messages to print")
	flag.Parse()

	logger.Init()
	fmt.Println("=== GMO Coin Connector 快速开始 ===")

	// 1. 加载配置
	cfg, err := config.Load(config.Options{EnvFiles: []string{*envPath}, File: *configPath})
	if err != nil {
		logger.Error("加载配置失败: %v", err)
		os.Exit(1)
	}
	if cfg.LogLevel != "" {
		logger.SetLogLevelFromString(cfg.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 创建SDK
	sdkInstance := sdk.NewSDK(cfg)
	ex, err := sdkInstance.Exchange(schema.MarketType(*market))
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	// 3. 查询两个市场的状态
	statusCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	statuses, err := sdkInstance.Status(statusCtx)
	cancel()
	if err != nil {
		logger.Error("查询状态失败: %v", err)
		os.Exit(1)
	}
	for _, m := range []schema.MarketType{schema.CRYPTO, schema.FX} {
		fmt.Printf("%-6s %s\n", m, statusLabel(statuses[m]))
	}

	// 4. 查询行情
	if err := printTickers(ctx, sdkInstance, ex.Market(), *symbol); err != nil {
		logger.Error("查询行情失败: %v", err)
		os.Exit(1)
	}

	if *symbol == "" {
		return
	}

	// 5. 订阅公共行情推送
	if err := stream(ctx, ex.Listen, *symbol, *count); err != nil {
		logger.Error("行情推送失败: %v", err)
		os.Exit(1)
	}
}

func statusLabel(res any) aurora.Value {
	env, ok := res.(map[string]any)
	if !ok {
		return aurora.Red("UNKNOWN")
	}
	data, _ := env["data"].(map[string]any)
	switch s, _ := data["status"].(string); s {
	case "OPEN":
		return aurora.Bold(aurora.Green(s))
	case "":
		return aurora.Red("UNKNOWN")
	default:
		return aurora.Bold(aurora.Yellow(s))
	}
}

func printTickers(ctx context.Context, s *sdk.SDK, market schema.MarketType, symbol string) error {
	var params schema.Params
	if market == schema.CRYPTO && symbol != "" {
		params = params.Add("symbol", symbol)
	}

	var raw []byte
	var err error
	if market == schema.CRYPTO {
		raw, err = s.Crypto().Client().RequestRaw(ctx, "GET", "/v1/ticker", params, nil)
	} else {
		raw, err = s.FX().Client().RequestRaw(ctx, "GET", "/v1/ticker", params, nil)
	}
	if err != nil {
		return err
	}

	env, err := schema.ParseEnvelope(raw)
	if err != nil {
		return err
	}
	tickers, err := schema.DecodeTickers(env)
	if err != nil {
		return err
	}

	for _, t := range tickers {
		if symbol != "" && t.Symbol != symbol {
			continue
		}
		fmt.Printf("%-10s ask=%s bid=%s spread=%s\n",
			aurora.Bold(t.Symbol), aurora.Red(t.Ask.String()), aurora.Green(t.Bid.String()), aurora.Blue(t.Spread().String()))
	}
	return nil
}

func stream(ctx context.Context, listen func(context.Context) (interfaces.Listener, error), symbol string, n int) error {
	l, err := listen(ctx)
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.Subscribe(ctx, symbol, schema.ChannelTicker); err != nil {
		return err
	}
	fmt.Printf("订阅 %s, 接收 %d 条消息, 按 Ctrl+C 退出\n", aurora.Bold(symbol), n)

	for i := 0; i < n; i++ {
		recvCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := l.ReceiveNext(recvCtx)
		cancel()
		if err != nil {
			return err
		}
		t, err := schema.TickerFromMessage(msg)
		if err != nil {
			logger.Warn("无法解析行情消息: %v", err)
			continue
		}
		fmt.Printf("[%s] %s ask=%s bid=%s\n",
			t.Timestamp.Format(time.RFC3339), aurora.Bold(t.Symbol), aurora.Red(t.Ask.String()), aurora.Green(t.Bid.String()))
	}
	return l.Unsubscribe(ctx, symbol, schema.ChannelTicker)
}
