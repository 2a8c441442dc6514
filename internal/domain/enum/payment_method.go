package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentMethod represents how a customer paid
type PaymentMethod int

const (
	PaymentMethodEBanking PaymentMethod = 0
	PaymentMethodCard     PaymentMethod = 1
	PaymentMethodPayPal   PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	names := [...]string{"e-banking", "card", "paypal"}
	if int(m) < 0 || int(m) >= len(names) {
		return "e-banking"
	}
	return names[m]
}

// ParsePaymentMethod maps a method name to its value; empty means e-banking
func ParsePaymentMethod(str string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "e-banking", "ebanking":
		return PaymentMethodEBanking, nil
	case "card", "credit_card", "credit card":
		return PaymentMethodCard, nil
	case "paypal":
		return PaymentMethodPayPal, nil
	}
	return PaymentMethodEBanking, fmt.Errorf("unknown payment method %q", str)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodEBanking
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
