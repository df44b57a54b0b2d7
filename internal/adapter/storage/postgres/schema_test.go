package postgres

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", name))
	require.NoError(t, err)
	return strings.Join(strings.Fields(string(b)), " ")
}

func TestSchema_RecipientProviderIDTiedToStatus(t *testing.T) {
	up := readMigration(t, "0001_campaigns.up.sql")

	assert.Contains(t, up, "CONSTRAINT chk_recipient_provider_id CHECK ((status = 'PENDING') = (provider_message_id IS NULL))")
}

func TestSchema_DownDropsEveryTable(t *testing.T) {
	down := readMigration(t, "0001_campaigns.down.sql")

	for _, table := range []string{"campaign_recipients", "campaigns", "audit_logs"} {
		assert.Contains(t, down, table)
	}
}
