package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// 行情数据源
// ============================================================================

// AssetSource 行情数据源，返回按排名排序的币种快照
type AssetSource interface {
	FetchTopAssets(ctx context.Context) ([]PriceRecord, error)
}

// ErrNoAssets 接口返回了空列表
var ErrNoAssets = errors.New("no assets in response")

// FetchError 行情获取失败，Op 标记失败的阶段
type FetchError struct {
	Op  string // "request" / "status" / "decode" / "empty"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ============================================================================
// CoinCap API
// ============================================================================

// coinCapResponse /v2/assets 的响应结构
type coinCapResponse struct {
	Data      []coinCapAsset `json:"data"`
	Error     string         `json:"error,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

// coinCapAsset 单个币种；数值字段是字符串，可能为 null
type coinCapAsset struct {
	ID                string          `json:"id"`
	Rank              decimal.Decimal `json:"rank"`
	Symbol            string          `json:"symbol"`
	Name              string          `json:"name"`
	PriceUsd          decimal.Decimal `json:"priceUsd"`
	ChangePercent24Hr decimal.Decimal `json:"changePercent24Hr"`
	MarketCapUsd      decimal.Decimal `json:"marketCapUsd"`
	VolumeUsd24Hr     decimal.Decimal `json:"volumeUsd24Hr"`
}

// toRecord 转换为 PriceRecord
func (a coinCapAsset) toRecord() PriceRecord {
	return PriceRecord{
		Rank:      int(a.Rank.IntPart()),
		Name:      strings.TrimSpace(a.Name),
		Symbol:    strings.TrimSpace(a.Symbol),
		Price:     a.PriceUsd.InexactFloat64(),
		Change:    a.ChangePercent24Hr.InexactFloat64(),
		MarketCap: a.MarketCapUsd.InexactFloat64(),
		Volume24h: a.VolumeUsd24Hr.InexactFloat64(),
	}
}

// CoinCapClient 通过 HTTP 获取 CoinCap 行情
type CoinCapClient struct {
	httpClient *http.Client
	baseURL    string
	limit      int
	apiKey     string
}

// NewCoinCapClient 根据配置创建客户端
func NewCoinCapClient(cfg APIConfig) *CoinCapClient {
	return &CoinCapClient{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    cfg.URL,
		limit:      cfg.Limit,
		apiKey:     cfg.APIKey,
	}
}

// requestURL 在配置的地址上追加 limit 参数
func (c *CoinCapClient) requestURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if c.limit > 0 {
		q := u.Query()
		q.Set("limit", strconv.Itoa(c.limit))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// FetchTopAssets 获取按排名排序的币种列表
func (c *CoinCapClient) FetchTopAssets(ctx context.Context) ([]PriceRecord, error) {
	endpoint, err := c.requestURL()
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cryptop")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logDebug("log.api.request", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, &FetchError{
			Op:  "status",
			Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
		}
	}

	var payload coinCapResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Op: "decode", Err: err}
	}
	if payload.Error != "" {
		return nil, &FetchError{Op: "status", Err: errors.New(payload.Error)}
	}

	return parseAssets(payload.Data)
}

// parseAssets 转换并排序；空列表返回 ErrNoAssets
func parseAssets(assets []coinCapAsset) ([]PriceRecord, error) {
	if len(assets) == 0 {
		return nil, &FetchError{Op: "empty", Err: ErrNoAssets}
	}

	records := make([]PriceRecord, 0, len(assets))
	for _, asset := range assets {
		records = append(records, asset.toRecord())
	}

	sortRecordsByRank(records)
	return records, nil
}
