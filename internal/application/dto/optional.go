package dto

import "encoding/json"

// OptionalInt64 entero anulable que distingue "clave ausente" de "null explícito"
// en un body JSON. json.Unmarshal solo invoca UnmarshalJSON si la clave está
// presente, así que Set queda en false para claves ausentes.
type OptionalInt64 struct {
	Set   bool  `json:"-"`
	Valid bool  `json:"-"` // false con Set=true -> null explícito
	Value int64 `json:"-"`
}

// UnmarshalJSON marca el campo como presente y decodifica el valor o el null.
func (o *OptionalInt64) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr devuelve el valor como puntero (nil si es null explícito o ausente).
func (o OptionalInt64) Ptr() *int64 {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
