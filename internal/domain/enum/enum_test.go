package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipmentStatus(t *testing.T) {
	tests := map[string]ShipmentStatus{
		"pending":          ShipmentStatusPending,
		"peding":           ShipmentStatusPending,
		"Shipped":          ShipmentStatusShipped,
		"Out for Delivery": ShipmentStatusOutForDelivery,
		"delivered":        ShipmentStatusDelivered,
		"CANCELLED":        ShipmentStatusCancelled,
	}
	for in, want := range tests {
		got, err := ParseShipmentStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseShipmentStatus("lost")
	assert.Error(t, err)
}

func TestShipmentStatus_JSON(t *testing.T) {
	data, err := json.Marshal(ShipmentStatusOutForDelivery)
	require.NoError(t, err)
	assert.JSONEq(t, `"out_for_delivery"`, string(data))

	var s ShipmentStatus
	require.NoError(t, json.Unmarshal([]byte(`"delivered"`), &s))
	assert.Equal(t, ShipmentStatusDelivered, s)

	assert.Error(t, json.Unmarshal([]byte(`9`), &s))
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodEBanking, m)

	m, err = ParsePaymentMethod("PayPal")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodPayPal, m)
	assert.Equal(t, "paypal", m.String())

	_, err = ParsePaymentMethod("bitcoin")
	assert.Error(t, err)
}
