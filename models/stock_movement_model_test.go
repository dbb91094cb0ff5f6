package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovementType(t *testing.T) {
	tests := map[string]MovementType{
		"IN":       MovementInbound,
		"in":       MovementInbound,
		"INBOUND":  MovementInbound,
		" out ":    MovementOutbound,
		"OUTBOUND": MovementOutbound,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseMovementType(raw), raw)
	}

	unknown := ParseMovementType("TRANSFER")
	assert.False(t, unknown.IsValid())
}

func TestMovementTypeJSON(t *testing.T) {
	var body struct {
		Type MovementType `json:"movement_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"movement_type":"OUTBOUND"}`), &body))
	assert.Equal(t, MovementOutbound, body.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"movement_type":1}`), &body))

	data, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"movement_type":"OUT"}`, string(data))
}

func TestDelta(t *testing.T) {
	in := StockMovement{MovementType: MovementInbound, Quantity: 12}
	out := StockMovement{MovementType: MovementOutbound, Quantity: 5}
	assert.Equal(t, 12, in.Delta())
	assert.Equal(t, -5, out.Delta())

	bad := StockMovement{MovementType: "X", Quantity: 1}
	assert.Panics(t, func() { bad.Delta() })
}

func TestMovementReason(t *testing.T) {
	for _, r := range []MovementReason{ReasonBondedReceipt, ReasonProductionIssue, ReasonExportDispatch, ReasonWastage, ReasonAdjustment} {
		assert.True(t, r.IsValid(), r)
		assert.NotEqual(t, string(r), r.Label(), r)
	}
	assert.False(t, MovementReason("THEFT").IsValid())
	assert.Equal(t, "THEFT", MovementReason("THEFT").Label())
}

func TestProductView(t *testing.T) {
	supplier := Supplier{Name: "Acme"}
	p := Product{
		SKU:      "SKU-1",
		Category: &Category{Name: "General"},
		Supplier: &supplier,
		HSCode:   &HSCode{Code: "8471.30"},
	}
	view := NewProductView(p)
	assert.Equal(t, "General", view.CategoryName)
	require.NotNil(t, view.SupplierName)
	assert.Equal(t, "Acme", *view.SupplierName)
	require.NotNil(t, view.HSCodeCode)
	assert.Equal(t, "8471.30", *view.HSCodeCode)
	assert.Nil(t, view.UOMCode)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "SKU-1", decoded["sku"])
	assert.Equal(t, "General", decoded["category_name"])
	assert.Nil(t, decoded["uom_code"])
	assert.NotContains(t, decoded, "Category")
}
