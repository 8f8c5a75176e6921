package docker

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestLocalClient_NilCheck 测试空客户端的错误处理
func TestLocalClient_NilCheck(t *testing.T) {
	var client *LocalClient
	ctx := context.Background()

	if _, err := client.ListContainers(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized for ListContainers, got: %v", err)
	}
	if err := client.StartContainer(ctx, "abc"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized for StartContainer, got: %v", err)
	}
	if err := client.StopContainer(ctx, "abc", 5); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized for StopContainer, got: %v", err)
	}
	if err := client.RemoveContainer(ctx, "abc", true); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized for RemoveContainer, got: %v", err)
	}
	if _, err := client.CreateContainer(ctx, "web", "nginx"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized for CreateContainer, got: %v", err)
	}

	// Close 对空客户端是安全的
	if err := client.Close(); err != nil {
		t.Errorf("Expected nil error for nil client Close, got: %v", err)
	}
}

// TestDial_MissingSocket 连接不存在的 socket 应返回 ErrConnection
func TestDial_MissingSocket(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Dial(ctx, t.TempDir()+"/missing.sock")
	if err == nil {
		t.Fatal("Expected error when dialing a missing socket")
	}
	if !errors.Is(err, ErrConnection) {
		t.Errorf("Expected ErrConnection, got: %v", err)
	}
}

// 注意：以下是集成测试，需要真实的 Docker 环境
// 使用 go test -short 可以跳过

// TestListContainers_Integration 集成测试 ListContainers
func TestListContainers_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Dial(ctx, "")
	if err != nil {
		t.Skipf("Cannot connect to Docker daemon: %v", err)
		return
	}
	defer client.Close()

	containers, err := client.ListContainers(ctx)
	if err != nil {
		t.Fatalf("ListContainers failed: %v", err)
	}

	t.Logf("Found %d containers", len(containers))
	for _, c := range containers {
		if c.ID == "" {
			t.Error("Container ID should not be empty")
		}
		if c.State != nil && c.State.Running != (c.State.Status == "running") {
			t.Errorf("Running flag mismatch for %s: %+v", c.ID, c.State)
		}
	}
}
