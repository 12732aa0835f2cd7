package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IgnoreProperty is one ignored-property rule: a change of Property on an
// object whose real class is exactly Class is not significant.
type IgnoreProperty struct {
	Class    string `json:"class" validate:"required"`
	Property string `json:"property" validate:"required"`
}

// IgnoreProperties is the ordered list of ignored-property rules.
//
// From the environment and flags it is read as a comma-separated list of
// "Class.Property" pairs; the class is everything before the last dot. In
// JSON it is an array of {"class", "property"} objects.
type IgnoreProperties struct {
	Rules []IgnoreProperty `validate:"dive"`
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *IgnoreProperties) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		p.Rules = nil
		return nil
	}

	items := strings.Split(raw, ",")
	rules := make([]IgnoreProperty, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		dot := strings.LastIndex(item, ".")
		if dot <= 0 || dot == len(item)-1 {
			return fmt.Errorf("%w: %q", ErrInvalidIgnoreProperty, item)
		}

		rules = append(rules, IgnoreProperty{Class: item[:dot], Property: item[dot+1:]})
	}

	p.Rules = rules
	return nil
}

// String renders the rules back into the "Class.Property,..." form.
func (p IgnoreProperties) String() string {
	parts := make([]string, 0, len(p.Rules))
	for _, rule := range p.Rules {
		parts = append(parts, rule.Class+"."+rule.Property)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (p *IgnoreProperties) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

// UnmarshalJSON decodes an array of rule objects.
func (p *IgnoreProperties) UnmarshalJSON(b []byte) error {
	var rules []IgnoreProperty
	if err := json.Unmarshal(b, &rules); err != nil {
		return err
	}
	p.Rules = rules
	return nil
}

// MarshalJSON encodes the rules as an array of objects.
func (p IgnoreProperties) MarshalJSON() ([]byte, error) {
	if p.Rules == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.Rules)
}
