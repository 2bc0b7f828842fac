package guigrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-guigrid"
	"github.com/domonda/go-guigrid/gridtest"
)

func TestSetElementText(t *testing.T) {
	fake := gridtest.New(nil)

	err := guigrid.SetElementText(fake, "hello")
	require.NoError(t, err)
	text, err := fake.Text()
	require.NoError(t, err)
	require.Equal(t, "hello", text)

	fake.Editable = false
	err = guigrid.SetElementText(fake, "world")
	require.ErrorIs(t, err, guigrid.ErrNotEditable)
	require.Equal(t, "hello", fake.ElementText)

	fake.Editable = true
	fake.Fail["SetText"] = errHostGone
	err = guigrid.SetElementText(fake, "world")
	var callErr *guigrid.ExternalCallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, "SetText", callErr.Op)
	require.Equal(t, "hello", fake.ElementText)
}

func TestBounds_String(t *testing.T) {
	b := guigrid.Bounds{Left: 10, Top: 20, Width: 300, Height: 200}
	require.Equal(t, "300x200+10+20", b.String())
}
