package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ShipmentStatus represents where a shipment is in delivery
type ShipmentStatus int

const (
	ShipmentStatusPending        ShipmentStatus = 0
	ShipmentStatusShipped        ShipmentStatus = 1
	ShipmentStatusOutForDelivery ShipmentStatus = 2
	ShipmentStatusDelivered      ShipmentStatus = 3
	ShipmentStatusCancelled      ShipmentStatus = 4
)

var shipmentStatusNames = [...]string{"pending", "shipped", "out_for_delivery", "delivered", "cancelled"}

func (s ShipmentStatus) String() string {
	if int(s) < 0 || int(s) >= len(shipmentStatusNames) {
		return shipmentStatusNames[0]
	}
	return shipmentStatusNames[s]
}

// IsValid reports whether s is a known status
func (s ShipmentStatus) IsValid() bool {
	return int(s) >= 0 && int(s) < len(shipmentStatusNames)
}

// ParseShipmentStatus accepts the status name in any case. The legacy
// misspelling "peding" is read as pending.
func ParseShipmentStatus(str string) (ShipmentStatus, error) {
	name := strings.ToLower(strings.TrimSpace(str))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "peding" {
		return ShipmentStatusPending, nil
	}
	for i, n := range shipmentStatusNames {
		if n == name {
			return ShipmentStatus(i), nil
		}
	}
	return ShipmentStatusPending, fmt.Errorf("unknown shipment status %q", str)
}

func (s ShipmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ShipmentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !ShipmentStatus(i).IsValid() {
			return fmt.Errorf("unknown shipment status %d", i)
		}
		*s = ShipmentStatus(i)
		return nil
	}
	parsed, err := ParseShipmentStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s ShipmentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ShipmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ShipmentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ShipmentStatus(v)
	case int:
		*s = ShipmentStatus(v)
	}
	return nil
}
