package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/audit"
	"github.com/kasku-dev/kasku/internal/config"
	"github.com/kasku-dev/kasku/internal/gitops"
	"github.com/kasku-dev/kasku/internal/store"
)

const (
	configFile = "kasku.yaml"
	dataSubdir = "data"
	dateFormat = "2006-01-02"
)

// workspace bundles the pieces every command needs: the resolved root
// directory, its config and the record store.
type workspace struct {
	root  string
	cfg   *config.Config
	store *store.Store
}

func openWorkspace(dir string) (*workspace, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := filepath.Join(root, configFile)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s in %s (run `kasku init` first)", configFile, root)
		}
		return nil, err
	}

	return &workspace{
		root:  root,
		cfg:   cfg,
		store: store.New(filepath.Join(root, dataSubdir)),
	}, nil
}

// finishMutation appends an audit entry and, when enabled, snapshots the
// workspace with git. Both are best-effort relative to the already-applied
// store write.
func (w *workspace) finishMutation(action, entityID, details string) {
	if err := audit.Record(w.root, action, entityID, details); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log: %v\n", err)
	}
	if w.cfg.Git.AutoCommit {
		msg := action
		if details != "" {
			msg = action + ": " + details
		}
		if _, err := gitops.Snapshot(w.root, msg, w.cfg.Git.AuthorName, w.cfg.Git.AuthorEmail); err != nil {
			fmt.Fprintf(os.Stderr, "warning: git snapshot: %v\n", err)
		}
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}
