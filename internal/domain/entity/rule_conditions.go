package entity

// RuleConditions bolsa de parámetros de una regla (deserializada de JSON).
// Contrato del motor: los parámetros desconocidos se ignoran y los ausentes caen
// al valor por defecto documentado de cada evaluador — nunca un fallo duro.
type RuleConditions map[string]any

// Float devuelve el parámetro como float64 o def si falta o no es numérico.
func (c RuleConditions) Float(key string, def float64) float64 {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Int devuelve el parámetro como int o def si falta o no es numérico.
// Los números JSON llegan como float64; se truncan.
func (c RuleConditions) Int(key string, def int) int {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return def
}

// String devuelve el parámetro como string o def si falta o no es string.
func (c RuleConditions) String(key, def string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool devuelve el parámetro como bool o def si falta o no es booleano.
func (c RuleConditions) Bool(key string, def bool) bool {
	if v, ok := c[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// StringSlice devuelve el parámetro como []string o def si falta o tiene otra forma.
// Acepta []string directo o []any de strings (forma típica tras json.Unmarshal).
func (c RuleConditions) StringSlice(key string, def []string) []string {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch list := v.(type) {
	case []string:
		if len(list) == 0 {
			return def
		}
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return def
		}
		return out
	}
	return def
}
