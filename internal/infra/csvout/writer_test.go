package csvout

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onepuxdomain "github.com/sleroq/onepux-to-csv/internal/domain/onepux"
)

const bom = "\xef\xbb\xbf"

func TestWriteRowsPrefixesBOMAndHeader(t *testing.T) {
	var buf bytes.Buffer
	rows := []onepuxdomain.Row{
		{Title: "Example", URL: "https://example.com", Username: "alice", Password: "p,ss\"word"},
		{Title: "銀行", Notes: "line one\n---\n標籤: a, b", OTPAuth: "JBSWY3DPEHPK3PXP"},
	}

	require.NoError(t, WriteRows(&buf, rows))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte(bom)), "expected BOM prefix, got %q", out[:min(len(out), 8)])

	records, err := csv.NewReader(bytes.NewReader(out[len(bom):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Title", "URL", "Username", "Password", "Notes", "OTPAuth"}, records[0])
	assert.Equal(t, rows[0].Record(), records[1])
	assert.Equal(t, rows[1].Record(), records[2])
}

func TestWriteRowsWithNoRowsWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, nil))
	assert.Equal(t, bom+"Title,URL,Username,Password,Notes,OTPAuth\n", buf.String())
}

func TestWriteFileReplacesTargetAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(target, []onepuxdomain.Row{{Title: "x"}}))

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, bom+"Title,URL,Username,Password,Notes,OTPAuth\nx,,,,,\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
