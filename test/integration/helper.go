// Package integration 对运行中的cafe-api做端到端测试
//
// 教学说明:
//   - 先启动服务(database.auto_migrate=true,菜单表里至少有一个上架菜品)
//   - CAFE_IT_BASE_URL 默认 http://localhost:8080/api/v1
//   - CAFE_JWT_SECRET 必须与服务端一致,测试用它直接签发顾客和店员Token
//   - 服务不可达或未设置密钥时整组测试跳过
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xiebiao/cafe/pkg/jwt"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// Response 统一响应结构
type Response struct {
	Status  int             `json:"-"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Env 一次测试运行需要的地址和Token
type Env struct {
	BaseURL       string
	CustomerToken string
	AdminToken    string
}

// Setup 检查服务是否可用并签发Token,不可用时跳过
func Setup(t *testing.T) *Env {
	t.Helper()

	baseURL := os.Getenv("CAFE_IT_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api/v1"
	}
	secret := os.Getenv("CAFE_JWT_SECRET")
	if secret == "" {
		t.Skip("CAFE_JWT_SECRET未设置,跳过集成测试")
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/ping")
	if err != nil {
		t.Skipf("服务不可达,跳过集成测试: %v", err)
	}
	resp.Body.Close()

	manager := jwt.NewManager(secret, time.Hour)
	// 每次运行用不同的顾客ID,避免购物车互相影响
	customerID := uint(time.Now().UnixNano()%1_000_000) + 1_000_000
	customerToken, err := manager.GenerateToken(customerID, jwt.RoleCustomer)
	require.NoError(t, err)
	adminToken, err := manager.GenerateToken(1, jwt.RoleAdmin)
	require.NoError(t, err)

	return &Env{BaseURL: baseURL, CustomerToken: customerToken, AdminToken: adminToken}
}

// Do 发送JSON请求并解析统一响应
func (e *Env) Do(t *testing.T, method, path string, body interface{}, token string) *Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "JSON序列化失败")
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.BaseURL+path, reader)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	result := Response{Status: resp.StatusCode}
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	return &result
}

// Decode 把Data解析到v
func (r *Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v), "解析响应数据失败: %s", string(r.Data))
}
