package guigrid_test

import (
	"errors"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-guigrid"
	"github.com/domonda/go-guigrid/gridtest"
)

type material struct {
	Number   string     `col:"MATNR"`
	Quantity int        `col:"MENGE"`
	Price    float64    `col:"NETPR"`
	Blocked  bool       `col:"SPERR"`
	Date     time.Time  `col:"BUDAT"`
	Note     *string    `col:"NOTE"`
	Internal string     `col:"-"`
	Host     netip.Addr `col:"HOST"`
}

func newMaterialGrid(t *testing.T) *guigrid.Grid {
	t.Helper()
	fake := gridtest.New(
		[]string{"MATNR", "MENGE", "NETPR", "SPERR", "BUDAT", "NOTE", "HOST", "EXTRA"},
		[]string{"M-1", "12-", "1.234,50", "X", "15.03.2024", "", "10.0.0.1", "ignored"},
		[]string{"M-2", "3", "0,99", "", "2024-03-16", "fragile", "", ""},
	)
	grid, err := guigrid.NewGrid(fake)
	require.NoError(t, err)
	return grid
}

func TestRow_Scan(t *testing.T) {
	grid := newMaterialGrid(t)

	row, err := grid.Row(0)
	require.NoError(t, err)

	var m material
	err = row.Scan(&m, &guigrid.DefaultStructFieldNaming, nil)
	require.NoError(t, err)
	require.Equal(t, material{
		Number:   "M-1",
		Quantity: -12,
		Price:    1234.5,
		Blocked:  true,
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Note:     nil,
		Host:     netip.MustParseAddr("10.0.0.1"),
	}, m)

	err = row.Scan(m, &guigrid.DefaultStructFieldNaming, nil)
	require.Error(t, err, "non pointer destination")

	var s string
	err = row.Scan(&s, nil, nil)
	require.Error(t, err, "non struct destination")
}

func TestScanRows(t *testing.T) {
	grid := newMaterialGrid(t)

	materials, err := guigrid.ScanRows[*material](grid, &guigrid.DefaultStructFieldNaming, nil)
	require.NoError(t, err)
	require.Len(t, materials, 2)
	require.Equal(t, "M-2", materials[1].Number)
	require.Equal(t, 3, materials[1].Quantity)
	require.InDelta(t, 0.99, materials[1].Price, 1e-9)
	require.False(t, materials[1].Blocked)
	require.NotNil(t, materials[1].Note)
	require.Equal(t, "fragile", *materials[1].Note)
	require.False(t, materials[1].Host.IsValid(), "blank cell scans as zero value")

	values, err := guigrid.ScanRows[material](grid, &guigrid.DefaultStructFieldNaming, nil)
	require.NoError(t, err)
	require.Equal(t, *materials[0], values[0])

	_, err = guigrid.ScanRows[string](grid, nil, nil)
	require.Error(t, err)
}

func TestScanRows_ParseError(t *testing.T) {
	fake := gridtest.New([]string{"MENGE"}, []string{"many"})
	grid, err := guigrid.NewGrid(fake)
	require.NoError(t, err)

	type quantity struct {
		Quantity int `col:"MENGE"`
	}
	_, err = guigrid.ScanRows[quantity](grid, &guigrid.DefaultStructFieldNaming, nil)
	require.ErrorContains(t, err, `row 0 column "MENGE"`)

	fake.Cells[0][0] = "300"
	type small struct {
		Quantity int8 `col:"MENGE"`
	}
	_, err = guigrid.ScanRows[small](grid, &guigrid.DefaultStructFieldNaming, nil)
	require.ErrorContains(t, err, "overflows")

	fake.Fail["CellValue"] = errHostGone
	_, err = guigrid.ScanRows[quantity](grid, &guigrid.DefaultStructFieldNaming, nil)
	require.ErrorIs(t, err, errHostGone)
}

func TestScanString(t *testing.T) {
	parser := guigrid.NewStringParser()

	var d time.Duration
	err := guigrid.ScanString(reflect.ValueOf(&d).Elem(), "90s", parser)
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)

	var u uint16
	err = guigrid.ScanString(reflect.ValueOf(&u).Elem(), " 65535 ", parser)
	require.NoError(t, err)
	require.Equal(t, uint16(65535), u)

	var p *int
	err = guigrid.ScanString(reflect.ValueOf(&p).Elem(), "null", parser)
	require.NoError(t, err)
	require.Nil(t, p)

	var c complex128
	err = guigrid.ScanString(reflect.ValueOf(&c).Elem(), "1", parser)
	require.True(t, errors.Is(err, errors.ErrUnsupported))

	err = guigrid.ScanString(reflect.ValueOf(u), "1", parser)
	require.Error(t, err, "not settable")
}
