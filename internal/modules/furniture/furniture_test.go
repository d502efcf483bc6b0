package furniture

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSetSameFamily(t *testing.T) {
	tests := []struct {
		style     Style
		chair     any
		table     any
		sofa      any
		chairInfo string
	}{
		{Modern, &ModernChair{}, &ModernTable{}, &ModernSofa{}, "Modern Chair - Material: Leather, Color: Black"},
		{Victorian, &VictorianChair{}, &VictorianTable{}, &VictorianSofa{}, "Victorian Chair - Material: Leather, Color: Black, with carvings"},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			m := NewManufacturer(&bytes.Buffer{})
			set, err := m.CreateSet(tt.style, "Leather", "Black")
			require.NoError(t, err)
			assert.IsType(t, tt.chair, set.Chair)
			assert.IsType(t, tt.table, set.Table)
			assert.IsType(t, tt.sofa, set.Sofa)
			assert.Equal(t, tt.chairInfo, set.Chair.Info())
		})
	}
}

func TestCreateSetDefaults(t *testing.T) {
	set, err := NewManufacturer(&bytes.Buffer{}).CreateSet(Victorian, "Wood", "Brown")
	require.NoError(t, err)
	assert.Equal(t, "Victorian Table - Material: Wood, Color: Brown, Size: Medium, with carvings", set.Table.Info())
	assert.Equal(t, "Victorian Sofa - Material: Wood, Color: Brown, Seats: 3, with carvings", set.Sofa.Info())
}

func TestCreateSetUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewManufacturer(&buf).CreateSet("baroque", "Wood", "Gold")
	require.ErrorIs(t, err, ErrUnknownStyle)
	assert.Contains(t, buf.String(), "❌ Unknown furniture style: baroque")
}

func TestStylesSorted(t *testing.T) {
	m := NewManufacturer(&bytes.Buffer{})
	m.Register("art_deco", NewModernFactory(&bytes.Buffer{}))
	assert.Equal(t, []Style{"art_deco", Modern, Victorian}, m.Styles())
}

func TestUncarvedNarration(t *testing.T) {
	var buf bytes.Buffer
	c := &VictorianChair{Material: "Oak", Color: "Red", out: &buf}
	c.SitOn()
	assert.Equal(t, "🪑 Sitting on victorian Red Oak chair without carvings\n", buf.String())
	assert.Equal(t, "Victorian Chair - Material: Oak, Color: Red, without carvings", c.Info())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	err := Demo(&buf, []Order{
		{Style: "modern", Material: "Leather", Color: "Black"},
		{Style: "gothic", Material: "Stone", Color: "Grey"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "📋 MODERN Furniture Set Details:")
	assert.Contains(t, buf.String(), "❌ Unknown furniture style: gothic")
}
