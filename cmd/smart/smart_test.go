package smart_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/cmd/smart"
	"fjacquet/finny-analyzer/internal/config"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expensesCSV = `id,description,amount,date,category
1,Swiggy dinner,450,2024-01-02,Food
2,SWIGGY lunch order,300,2024-01-09,Food
3,Rent payment,15000,2024-01-01,Housing
`

func TestSmartCommand_Metadata(t *testing.T) {
	assert.Equal(t, "smart", smart.Cmd.Use)
	assert.Contains(t, smart.Cmd.Short, "merchant")
	assert.NotNil(t, smart.Cmd.RunE)
}

func TestRun(t *testing.T) {
	c, err := container.NewContainerWithLoader(config.Default(), &store.MockDictionaryStore{}, logging.NewMockLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, smart.Run(c, root.CommonFlags{}, common.IO{In: strings.NewReader(expensesCSV), Out: &out}))

	var groups []models.SmartExpenseGroup
	require.NoError(t, json.Unmarshal(out.Bytes(), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Swiggy", groups[0].Merchant)
	assert.Equal(t, models.GroupReasonMerchant, groups[0].Reason)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 750.0, groups[0].TotalAmount)
}

func TestRun_CustomMerchants(t *testing.T) {
	loader := &store.MockDictionaryStore{Merchants: models.MerchantsConfig{Merchants: []models.MerchantConfig{
		{Name: "Landlord", Aliases: []string{"rent"}, Category: "Housing"},
	}}}
	c, err := container.NewContainerWithLoader(config.Default(), loader, logging.NewMockLogger())
	require.NoError(t, err)

	input := expensesCSV + "4,Rent payment,15000,2024-02-01,Housing\n"
	var out bytes.Buffer
	require.NoError(t, smart.Run(c, root.CommonFlags{}, common.IO{In: strings.NewReader(input), Out: &out}))

	var groups []models.SmartExpenseGroup
	require.NoError(t, json.Unmarshal(out.Bytes(), &groups))
	require.NotEmpty(t, groups)
	assert.Equal(t, "Landlord", groups[0].Merchant)
	assert.Equal(t, 30000.0, groups[0].TotalAmount)
}
