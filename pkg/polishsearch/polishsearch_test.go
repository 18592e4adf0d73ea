package polishsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "zolty", Normalize("Żółty"))
	assert.Equal(t, "gdansk", Normalize("GDAŃSK"))
	assert.Equal(t, "swieto", Normalize("Święto"))
	assert.Equal(t, "nowak", Normalize("nowak"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Małgorzata Wiśniewska", "wisniew"))
	assert.True(t, Contains("anna@example.com", "ANNA"))
	assert.False(t, Contains("Jan Kowalski", "nowak"))
}

func TestSQLFilter(t *testing.T) {
	fragment, args := SQLFilter("submissions.last_name", "Wiśniewska")
	assert.Contains(t, fragment, "translate(lower(submissions.last_name)")
	assert.Contains(t, fragment, "LIKE ?")
	assert.Equal(t, []interface{}{"%wisniewska%"}, args)
}
