package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/category"
	"github.com/kasku-dev/kasku/internal/config"
	"github.com/kasku-dev/kasku/internal/gitops"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

func newInitCommand(dir *string) *cobra.Command {
	var profile string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new Kasku data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(*dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, profile, noGit)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("profile")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git snapshotting")

	return cmd
}

func runInit(dir, profile string, noGit bool) error {
	cfgPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", configFile, dir)
	}

	for _, d := range []string{dataSubdir, "logs", "exports", "import"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(profile)
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	st := store.New(filepath.Join(dir, dataSubdir))
	if err := st.SetCategories(category.DefaultSet(time.Now())); err != nil {
		return fmt.Errorf("writing default categories: %w", err)
	}
	if err := st.SetSettings(model.DefaultSettings()); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	gitignore := "exports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if cfg.Git.AutoCommit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: "+profile, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized Kasku data directory at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized Kasku data directory at %s\n", dir)
	return nil
}
