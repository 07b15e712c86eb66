//go:build e2e

// Package e2e はE2Eテストで使用するヘルパー関数を提供します
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"
)

var (
	// setupOnce はE2E環境セットアップを一度だけ実行するためのSync.Once
	setupOnce sync.Once
	setupErr  error
)

// TestMain はE2Eテストパッケージ全体の初期化を行います
func TestMain(m *testing.M) {
	if err := SetupE2EEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のセットアップに失敗しました: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// SetupE2EEnvironment はテスト対象のサービスが応答するまで待機します
// sync.Onceにより、複数回呼び出されても実際の待機は一度だけ実行されます
func SetupE2EEnvironment() error {
	setupOnce.Do(func() {
		setupErr = WaitForService(GetHealthzEndpoint(), 30*time.Second)
	})
	return setupErr
}

// getEnvOrDefault は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBaseEndpoint はE2Eテスト対象のベースエンドポイントを返します
// 環境変数 E2E_TEST_ENDPOINT が設定されている場合はその値を使用し、
// 設定されていない場合は http://localhost:8080 をデフォルトとして返します
func GetBaseEndpoint() string {
	return getEnvOrDefault("E2E_TEST_ENDPOINT", "http://localhost:8080")
}

func GetHealthzEndpoint() string {
	return fmt.Sprintf("%s/healthz", GetBaseEndpoint())
}

func GetReadyzEndpoint() string {
	return fmt.Sprintf("%s/readyz", GetBaseEndpoint())
}

// GetNamesEndpoint は名前APIのエンドポイントを返します (describe, edit, compare)
func GetNamesEndpoint(action string) string {
	return fmt.Sprintf("%s/names/%s", GetBaseEndpoint(), action)
}

func GetSavedNameEndpoint(key string) string {
	return fmt.Sprintf("%s/names/saved/%s", GetBaseEndpoint(), key)
}

func GetNodesEndpoint() string {
	return fmt.Sprintf("%s/nodes", GetBaseEndpoint())
}

func GetNodeEndpoint(id string) string {
	return fmt.Sprintf("%s/nodes/%s", GetBaseEndpoint(), id)
}

// WaitForService は指定されたURLが5xx以外を返すまで待機します
func WaitForService(url string, timeout time.Duration) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	deadline := time.Now().Add(timeout)

	checkService := func() bool {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 500 {
				return true
			}
		}
		return false
	}

	if checkService() {
		return nil
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if time.Now().After(deadline) {
			return fmt.Errorf("サービスの起動を待機中にタイムアウトしました: %s", url)
		}
		if checkService() {
			return nil
		}
	}
	return nil
}

// DoJSON はJSONボディ付きでリクエストを送り、ステータスコードとデコードしたボディを返します
// 204の場合ボディはnilになります
func DoJSON(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("リクエストボディのエンコードに失敗しました: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("リクエストの作成に失敗しました: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// 認証を有効にした環境向け
	if token := os.Getenv("E2E_BEARER_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("HTTPリクエストに失敗しました: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("レスポンスボディの読み取りに失敗しました: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("JSONのパースに失敗しました: %v (body: %s)", err, raw)
	}
	return resp.StatusCode, got
}
