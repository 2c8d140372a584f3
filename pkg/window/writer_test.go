package window

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalframe/signalframe/pkg/errors"
)

func TestRowWriterFormatting(t *testing.T) {
	var out bytes.Buffer
	writer := NewRowWriter(&out)

	require.NoError(t, writer.WriteRow([]float64{1, 2.5, 3.14}))
	require.NoError(t, writer.WriteRow([]float64{-4, 0, 1e-3}))
	require.NoError(t, writer.Flush())

	assert.Equal(t, "1,2.5,3.14\n-4,0,0.001", out.String())
	assert.Equal(t, 2, writer.Rows())
}

func TestRowWriterCreateRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

	_, err := Create(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypePrecondition))
	assert.Contains(t, err.Error(), "already exists")

	// Existing content untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestRowWriterCreateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	writer, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, writer.WriteRow([]float64{1, 2}))
	require.NoError(t, writer.Close())
	require.NoError(t, writer.Close()) // idempotent

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,2", string(data))
}
