// Package testutil provides shared test helpers for creating config files and
// wrong-answer fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

// SetupTestConfig creates a minimal config file with a file-backed record
// store and all required directories for testing. Returns the path to the
// generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"records", "reports"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`records:
  store: yaml
  yaml_file: %s
outputs:
  report_directory: %s
`,
		filepath.Join(tmpDir, "records", "wrong_answers.yml"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteRecords writes wrong-answer records to the given YAML file.
func WriteRecords(t *testing.T, path string, records []review.WrongAnswerRecord) {
	t.Helper()

	content, err := yaml.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0644))
}
