package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/backlog/internal/domain"
	"github.com/runoshun/backlog/internal/testutil"
	"github.com/runoshun/backlog/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			Repo: domain.ConfigInfo{
				Path:    "/test/.backlog.toml",
				Content: "[tracker]\nbackend = \"github\"",
				Exists:  true,
			},
			Global: domain.ConfigInfo{
				Path:    "/home/test/.config/backlog/config.toml",
				Content: "[log]\nlevel = \"debug\"",
				Exists:  true,
			},
		}
		loader := testutil.NewMockConfigLoader()
		loader.Config.Tracker.Backend = domain.BackendGitHub

		uc := usecase.NewShowConfig(manager, loader)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/test/.backlog.toml", out.RepoConfig.Path)
		assert.True(t, out.RepoConfig.Exists)
		assert.Equal(t, "[log]\nlevel = \"debug\"", out.GlobalConfig.Content)
		require.NotNil(t, out.EffectiveConfig)
		assert.Equal(t, domain.BackendGitHub, out.EffectiveConfig.Tracker.Backend)
	})

	t.Run("handles non-existent files", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			Repo:   domain.ConfigInfo{Path: "/test/.backlog.toml"},
			Global: domain.ConfigInfo{Path: "/home/test/.config/backlog/config.toml"},
		}

		uc := usecase.NewShowConfig(manager, testutil.NewMockConfigLoader())
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.False(t, out.RepoConfig.Exists)
		assert.False(t, out.GlobalConfig.Exists)
		assert.Empty(t, out.RepoConfig.Content)
		assert.NotNil(t, out.EffectiveConfig)
	})

	t.Run("ignores global config when flag is set", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			Repo:   domain.ConfigInfo{Path: "/test/.backlog.toml", Exists: true},
			Global: domain.ConfigInfo{Path: "/home/test/.config/backlog/config.toml", Exists: true},
		}

		uc := usecase.NewShowConfig(manager, testutil.NewMockConfigLoader())
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{IgnoreGlobal: true})

		require.NoError(t, err)
		assert.Empty(t, out.GlobalConfig.Path)
		assert.Equal(t, "/test/.backlog.toml", out.RepoConfig.Path)
	})

	t.Run("ignores repo config when flag is set", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			Repo:   domain.ConfigInfo{Path: "/test/.backlog.toml", Exists: true},
			Global: domain.ConfigInfo{Path: "/home/test/.config/backlog/config.toml", Exists: true},
		}

		uc := usecase.NewShowConfig(manager, testutil.NewMockConfigLoader())
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{IgnoreRepo: true})

		require.NoError(t, err)
		assert.Empty(t, out.RepoConfig.Path)
		assert.Equal(t, "/home/test/.config/backlog/config.toml", out.GlobalConfig.Path)
	})

	t.Run("returns loader error", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.Err = errors.New("invalid config")

		uc := usecase.NewShowConfig(&testutil.MockConfigManager{}, loader)
		_, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		assert.EqualError(t, err, "invalid config")
	})
}
