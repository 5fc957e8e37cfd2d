package receipt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/receipt"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/config"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cornerShop = "CORNER SHOP\nMilk          3.49\nTOTAL         3.49"

func newContainer(t *testing.T) (*container.Container, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLoader(config.Default(), &store.MockDictionaryStore{}, logger)
	require.NoError(t, err)
	return c, logger
}

func TestReceiptCommand_Metadata(t *testing.T) {
	assert.Equal(t, "receipt [files...]", receipt.Cmd.Use)
	assert.Contains(t, receipt.Cmd.Short, "OCR text")
	assert.NotNil(t, receipt.Cmd.RunE)
	assert.NotNil(t, receipt.Cmd.Flags().Lookup("dir"))
}

func TestRun_Stdin(t *testing.T) {
	c, _ := newContainer(t)
	var out bytes.Buffer

	err := receipt.Run(context.Background(), c, root.CommonFlags{}, "", nil, common.IO{In: strings.NewReader(cornerShop), Out: &out})
	require.NoError(t, err)

	var parsed models.ParsedReceipt
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	assert.Equal(t, "Corner Shop", parsed.Merchant)
	assert.Equal(t, "3.49", parsed.Total)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, "Milk", parsed.Items[0].Name)
}

func TestRun_EmptyStdin(t *testing.T) {
	c, _ := newContainer(t)
	var out bytes.Buffer

	require.NoError(t, receipt.Run(context.Background(), c, root.CommonFlags{}, "", nil, common.IO{In: strings.NewReader(""), Out: &out}))

	var parsed models.ParsedReceipt
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	assert.Equal(t, models.UnknownMerchant, parsed.Merchant)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, models.EmptyReceiptItemName, parsed.Items[0].Name)
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(cornerShop), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.TXT"), []byte("Joe's Diner\nTOTAL: $18.40"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0600))

	c, logger := newContainer(t)
	var out bytes.Buffer
	require.NoError(t, receipt.Run(context.Background(), c, root.CommonFlags{}, dir, nil, common.IO{Out: &out}))

	var parsed []models.ParsedReceipt
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "Corner Shop", parsed[0].Merchant)
	assert.Equal(t, "18.40", parsed[1].Total)
	assert.True(t, logger.HasEntry("INFO", "Parsed receipts"))
}

func TestRun_MissingFile(t *testing.T) {
	c, _ := newContainer(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	err := receipt.Run(context.Background(), c, root.CommonFlags{}, "", []string{missing}, common.IO{Out: &bytes.Buffer{}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open receipt")
}

func TestRun_InputFileToOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "r.txt")
	output := filepath.Join(dir, "out", "r.json")
	require.NoError(t, os.WriteFile(input, []byte(cornerShop), 0600))

	c, _ := newContainer(t)
	require.NoError(t, receipt.Run(context.Background(), c, root.CommonFlags{Input: input, Output: output}, "", nil, common.IO{}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"merchant": "Corner Shop"`)
}
