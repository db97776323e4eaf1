package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "personal_info": {
    "full_name": "Ada Lovelace",
    "email": "ada@example.com",
    "linkedin": "https://www.linkedin.com/in/ada"
  },
  "professional_summary": "Analyst of engines",
  "experience": [
    {"position": "Engineer", "company": "Analytical Engines", "start_date": "2021-05", "is_current": true}
  ],
  "education": [
    {"degree": "B.Sc.", "field": "Mathematics", "graduation_date": "2018-07"}
  ],
  "skills": ["Go", "Go"]
}`

// resetFlags restores every flag to its default so commands can run repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// clearResumeEnv keeps the developer's environment out of CLI tests.
func clearResumeEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RESUME_TEMPLATE", "RESUME_ACCENT", "RESUME_LOCALE", "RESUME_FORMAT", "RESUME_PDF_TIMEOUT", "CHROME_PATH", "LC_ALL", "LC_TIME", "LANG"} {
		t.Setenv(key, "")
	}
}

// executeCommand runs the root command in-process and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearResumeEnv(t)
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
