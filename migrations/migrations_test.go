package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(files, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(files, "*.down.sql")
	require.NoError(t, err)

	assert.Len(t, ups, 2)
	assert.Len(t, downs, len(ups))
}
