package media

// Validate runs every constraint the handler attaches to rec and returns
// the violations in field/delta order. Handlers without constraints pass.
func Validate(rec Record, h Handler) []*Violation {
	attacher, ok := h.(ConstraintAttacher)
	if !ok {
		return nil
	}

	var violations []*Violation
	for _, c := range attacher.Constraints(rec) {
		var value *string
		if items, ok := rec.Items(c.Field()); ok && c.Delta() < len(items) {
			value = &items[c.Delta()]
		}
		if v := c.Check(value); v != nil {
			violations = append(violations, v)
		}
	}
	return violations
}
