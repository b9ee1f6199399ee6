package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeEmbedded(t *testing.T) {
	require.Len(t, SQL.Files, 2)
	assert.Equal(t, "orders.sql", SQL.Files[0].Path)
	assert.Equal(t, "reports/daily.sql", SQL.Files[1].Path)
	assert.Len(t, SQL.Files[0].Statements, 4)
	assert.Len(t, SQL.Files[1].Statements, 2)
}

func TestDigestsGroupLiterals(t *testing.T) {
	groups := SQL.Digests()
	require.Len(t, groups, 5)

	// the two customer queries differ only in a literal
	assert.Len(t, groups[0].Statements, 2)
	assert.Equal(t,
		"SELECT `o` . `id` , `o` . `placed_at` , `o` . `total` FROM `orders` `o` WHERE `o` . `customer_id` = ? ORDER BY `o` . `placed_at` DESC",
		groups[0].Text)

	texts := map[string]bool{}
	for _, g := range groups {
		texts[g.Text] = true
	}
	assert.True(t, texts["INSERT INTO `orders` ( `customer_id` , `total` ) VALUES (...) /* , ... */"], texts)
	assert.True(t, texts["UPDATE `orders` SET `fulfilment` = ? WHERE `id` IN (...)"], texts)
}

func TestHintsAndVersionComments(t *testing.T) {
	daily := SQL.Files[1].Statements
	assert.Equal(t, "MAX_EXECUTION_TIME(1000)", daily[0].Tokens[0].Value.Hints)
	assert.Contains(t, daily[0].DigestText, "WITH ROLLUP")
	assert.Equal(t, "SELECT  SQL_NO_CACHE  COUNT(*) FROM orders;", daily[1].Preprocessed)
}
