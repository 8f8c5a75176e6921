//go:build unix

package docker

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckSocketAccess_Missing(t *testing.T) {
	err := CheckSocketAccess(filepath.Join(t.TempDir(), "missing.sock"))
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestCheckSocketAccess_NotASocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := CheckSocketAccess(path); !errors.Is(err, ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestCheckSocketAccess_Socket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	defer ln.Close()

	if err := CheckSocketAccess(path); err != nil {
		t.Fatalf("expected access to own socket, got %v", err)
	}

	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	if err := os.Chmod(path, 0); err != nil {
		t.Fatal(err)
	}
	if err := CheckSocketAccess(path); !errors.Is(err, ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
}
