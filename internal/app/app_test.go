package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UnknownStartPage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		StartPage:  "nowhere",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown page "nowhere"`)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0o600))

	err := Run(context.Background(), Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestUIExit(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	killed := fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled)
	other := errors.New("render failed")

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want error
	}{
		{"clean quit", context.Background(), nil, nil},
		{"signal cancels program", cancelled, killed, nil},
		{"killed without cancellation", context.Background(), killed, killed},
		{"other error after cancellation", cancelled, other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uiExit(tt.ctx, tt.err)
			if got != tt.want {
				t.Fatalf("uiExit() = %v, want %v", got, tt.want)
			}
		})
	}
}
