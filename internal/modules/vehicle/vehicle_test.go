package vehicle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManufacture(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		typ  any
	}{
		{KindCar, "Car: Volkswagen Golf (2024)", &Car{}},
		{KindMotorcycle, "Motorcycle: Volkswagen Golf (2024)", &Motorcycle{}},
		{KindTruck, "Truck: Volkswagen Golf (2024) - Capacity: 10 tons", &Truck{}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v, err := NewManufacturer(&bytes.Buffer{}).Manufacture(tt.kind, "Volkswagen", "Golf", 2024)
			require.NoError(t, err)
			assert.IsType(t, tt.typ, v)
			assert.Equal(t, tt.want, v.Info())
		})
	}
}

func TestManufactureUnknown(t *testing.T) {
	var buf bytes.Buffer
	v, err := NewManufacturer(&buf).Manufacture("boat", "Riva", "Aquarama", 1962)
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Nil(t, v)
	assert.Contains(t, buf.String(), "❌ Unknown vehicle type: boat")
}

func TestKindsSorted(t *testing.T) {
	assert.Equal(t, []Kind{KindCar, KindMotorcycle, KindTruck}, NewManufacturer(&bytes.Buffer{}).Kinds())
}

func TestEngineNarration(t *testing.T) {
	var buf bytes.Buffer
	v, err := NewManufacturer(&buf).Manufacture(KindTruck, "Volvo", "FH16", 2024)
	require.NoError(t, err)
	buf.Reset()
	v.StartEngine()
	v.StopEngine()
	assert.Equal(t, "🚛 Volvo FH16 engine started\n🚛 Volvo FH16 engine stopped\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf, []Order{
		{Kind: "car", Brand: "Volkswagen", Model: "Golf", Year: 2024},
		{Kind: "spaceship", Brand: "X", Model: "Y", Year: 2030},
	}))
	out := buf.String()
	assert.Contains(t, out, "📋 Car: Volkswagen Golf (2024)")
	assert.Contains(t, out, "❌ Unknown vehicle type: spaceship")
	assert.Contains(t, out, "  - truck: Truck Factory")
}
