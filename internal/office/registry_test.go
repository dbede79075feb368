package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddGet(t *testing.T) {
	r := NewRegistry()
	c := NewCopier("copier-1", WithName("Front Desk"))

	require.NoError(t, r.Add(c))
	assert.Equal(t, 1, r.Count())

	got, err := r.Get("copier-1")
	require.NoError(t, err)
	assert.Same(t, c, got)

	cp, err := r.Copier("copier-1")
	require.NoError(t, err)
	assert.Equal(t, "Front Desk", cp.Name())
}

func TestRegistry_AddErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(NewCopier("copier-1")))

	assert.ErrorIs(t, r.Add(NewCopier("copier-1")), ErrDeviceExists)
	assert.ErrorIs(t, r.Add(nil), ErrInvalidDevice)
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_NotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	_, err = r.Copier("missing")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	assert.ErrorIs(t, r.Remove("missing"), ErrDeviceNotFound)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(NewCopier("copier-1")))

	require.NoError(t, r.Remove("copier-1"))
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.Add(NewCopier(id)))
	}

	var ids []string
	for _, u := range r.List() {
		ids = append(ids, u.ID())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Len(t, r.ListByKind(KindCopier), 3)
	assert.Empty(t, r.ListByKind(KindFax))
}

func TestRegistry_GetStats(t *testing.T) {
	r := NewRegistry()
	a := NewCopier("a")
	b := NewCopier("b")
	require.NoError(t, r.Add(a))
	require.NoError(t, r.Add(b))

	a.PowerOn()
	require.NoError(t, a.ScanAndPrint())
	_, err := a.Scan(FormatPDF)
	require.NoError(t, err)

	b.PowerOn()
	b.PowerOff()
	b.PowerOn()
	b.PowerOff()

	stats := r.GetStats()
	assert.Equal(t, 2, stats.TotalDevices)
	assert.Equal(t, 2, stats.ByKind[KindCopier])
	assert.Equal(t, 1, stats.ByState[StateOn])
	assert.Equal(t, 1, stats.ByState[StateOff])
	assert.Equal(t, 3, stats.PowerCycles)
	assert.Equal(t, 1, stats.Prints)
	assert.Equal(t, 2, stats.Scans)
}
