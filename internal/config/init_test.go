package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/copyctx/internal/types"
	"github.com/temirov/copyctx/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFile(t *testing.T) {
	workingDirectory := t.TempDir()
	options := InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal}
	path, err := InitializeConfiguration(options)
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	for _, section := range []string{"common:", "content:", "structure:"} {
		if !strings.Contains(string(content), section) {
			t.Fatalf("missing section %s in configuration: %s", section, string(content))
		}
	}
}

func TestInitializedConfigurationMatchesDefaults(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("USERPROFILE", homeDir)
	workingDirectory := t.TempDir()
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}

	loadedConfig, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if err != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", err)
	}

	copyOptions := loadedConfig.CopyOptions()
	defaultCopyOptions := types.DefaultCopyOptions()
	if copyOptions.HeaderTemplate != defaultCopyOptions.HeaderTemplate ||
		copyOptions.FooterTemplate != defaultCopyOptions.FooterTemplate ||
		copyOptions.PreTextTemplate != defaultCopyOptions.PreTextTemplate ||
		copyOptions.PostTextTemplate != defaultCopyOptions.PostTextTemplate {
		t.Fatalf("template defaults differ: got %+v want %+v", copyOptions, defaultCopyOptions)
	}
	if copyOptions.FileCountLimit != types.DefaultFileCountLimit || copyOptions.MaxFileSizeKB != types.DefaultMaxFileSizeKB {
		t.Fatalf("limit defaults differ: %+v", copyOptions.CollectionOptions)
	}
	if !copyOptions.EnforceFileCountLimit || !copyOptions.RespectIgnoreRules || !copyOptions.InsertBlankLineBetweenFiles || !copyOptions.PreferOpenBufferContent {
		t.Fatalf("boolean defaults differ: %+v", copyOptions)
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("USERPROFILE", homeDir)
	path, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, Force: true})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(homeDir, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected configuration at %s, got %s", expectedPath, path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", path, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	workingDirectory := t.TempDir()
	path := filepath.Join(workingDirectory, utils.ConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	_, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: false})
	if err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
	_, err = InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: true})
	if err != nil {
		t.Fatalf("expected overwrite with force, got %v", err)
	}
}
