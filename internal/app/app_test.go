package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cmtui/internal/config"
	"cmtui/internal/docker"
	"cmtui/internal/ui"
)

type stubClient struct {
	closed chan struct{}
}

func (s *stubClient) ListContainers(ctx context.Context) ([]docker.Container, error) {
	return []docker.Container{{ID: "a"}}, nil
}
func (s *stubClient) StartContainer(ctx context.Context, id string) error             { return nil }
func (s *stubClient) StopContainer(ctx context.Context, id string, timeout int) error { return nil }
func (s *stubClient) RemoveContainer(ctx context.Context, id string, force bool) error {
	return nil
}
func (s *stubClient) CreateContainer(ctx context.Context, name, image string) (string, error) {
	return "id", nil
}
func (s *stubClient) Close() error {
	close(s.closed)
	return nil
}

func TestRun_ConnectFailureIsFatal(t *testing.T) {
	dialErr := errors.New("no daemon")
	err := run(context.Background(), config.Default(), deps{
		dial: func(ctx context.Context, endpoint string) (docker.Client, error) {
			return nil, dialErr
		},
	})
	if !errors.Is(err, dialErr) {
		t.Fatalf("expected dial error, got %v", err)
	}
}

func TestRun_QuitShutsDownWorker(t *testing.T) {
	client := &stubClient{closed: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), config.Default(), deps{
			dial: func(ctx context.Context, endpoint string) (docker.Client, error) {
				return client, nil
			},
			programOpts: []tea.ProgramOption{
				tea.WithInput(strings.NewReader("q")),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
			},
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit after q")
	}

	select {
	case <-client.closed:
	case <-time.After(time.Second):
		t.Fatal("worker did not close the client")
	}
}

func TestUIExit(t *testing.T) {
	live := context.Background()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	if err := uiExit(cancelled, ui.ErrBackendClosed, nil); err != nil {
		t.Fatalf("backend closed after shutdown should be clean, got %v", err)
	}
	if err := uiExit(live, ui.ErrBackendClosed, nil); !errors.Is(err, ui.ErrBackendClosed) {
		t.Fatalf("backend closed while running should be fatal, got %v", err)
	}
	if err := uiExit(live, nil, tea.ErrProgramKilled); err != nil {
		t.Fatalf("killed program should be clean, got %v", err)
	}
	runErr := errors.New("tty gone")
	if err := uiExit(live, nil, runErr); !errors.Is(err, runErr) {
		t.Fatalf("expected wrapped run error, got %v", err)
	}
	if err := uiExit(live, nil, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestLogSourceFactory(t *testing.T) {
	cfg := config.Default()
	if _, ok := logSourceFactory(cfg)(&stubClient{}).(*docker.FileLogSource); !ok {
		t.Fatal("expected file log source by default")
	}

	cfg.LogsSource = config.LogsSourceAPI
	if _, ok := logSourceFactory(cfg)(&docker.LocalClient{}).(*docker.APILogSource); !ok {
		t.Fatal("expected api log source for a daemon client")
	}
	if _, ok := logSourceFactory(cfg)(&stubClient{}).(*docker.FileLogSource); !ok {
		t.Fatal("expected fallback to file log source")
	}
}
