package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"vendor_registration/internal/domain/mapping"
	"vendor_registration/internal/domain/validation"

	"gopkg.in/yaml.v3"
)

//go:embed form_schema.yaml
var defaultFormSchema []byte

// FormSchema is the static table set of the registration form: validation
// rules, CRM field mapping, derived metadata and message text.
type FormSchema struct {
	Fields   []FieldSchema   `yaml:"fields"`
	Mapping  []MappingSchema `yaml:"mapping"`
	Derived  DerivedSchema   `yaml:"derived"`
	Messages Messages        `yaml:"messages"`
}

type FieldSchema struct {
	Name      string   `yaml:"name"`
	Label     string   `yaml:"label"`
	Required  bool     `yaml:"required"`
	MinLength int      `yaml:"minLength"`
	MaxLength int      `yaml:"maxLength"`
	Numeric   bool     `yaml:"numeric"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Pattern   string   `yaml:"pattern"`
	Message   string   `yaml:"message"`
}

type MappingSchema struct {
	Form   string `yaml:"form"`
	Remote string `yaml:"remote"`
	Kind   string `yaml:"kind"`
}

type DerivedSchema struct {
	SourceField         string `yaml:"sourceField"`
	SourceValue         string `yaml:"sourceValue"`
	SubmittedAtField    string `yaml:"submittedAtField"`
	StatusField         string `yaml:"statusField"`
	StatusValue         string `yaml:"statusValue"`
	EstimatedValueField string `yaml:"estimatedValueField"`
}

// Messages is the user-facing text of the registration flow.
type Messages struct {
	ValidationFailed          string `yaml:"validationFailed"`
	DuplicateTitle            string `yaml:"duplicateTitle"`
	Duplicate                 string `yaml:"duplicate"`
	RateLimitTitle            string `yaml:"rateLimitTitle"`
	RateLimit                 string `yaml:"rateLimit"`
	ServerErrorTitle          string `yaml:"serverErrorTitle"`
	ServerError               string `yaml:"serverError"`
	VendorConfirmationSubject string `yaml:"vendorConfirmationSubject"`
	AdminAlertSubject         string `yaml:"adminAlertSubject"`
}

// LoadFormSchema reads the schema from path, or the embedded default when
// path is empty.
func LoadFormSchema(path string) (*FormSchema, error) {
	data := defaultFormSchema
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read form schema: %w", err)
		}
		data = b
	}
	return ParseFormSchema(data)
}

func ParseFormSchema(data []byte) (*FormSchema, error) {
	var s FormSchema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse form schema: %w", err)
	}
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("form schema has no fields")
	}
	for _, m := range s.Mapping {
		switch mapping.ValueKind(m.Kind) {
		case mapping.KindString, mapping.KindNumber, mapping.KindBoolean, "":
		default:
			return nil, fmt.Errorf("form schema: mapping %q has unknown kind %q", m.Form, m.Kind)
		}
	}
	return &s, nil
}

// RuleSet compiles the field rules. Patterns are compiled once here.
func (s *FormSchema) RuleSet() (validation.RuleSet, error) {
	rules := make(validation.RuleSet, 0, len(s.Fields))
	for _, f := range s.Fields {
		r := validation.Rule{
			Label:     f.Label,
			Required:  f.Required,
			MinLength: f.MinLength,
			MaxLength: f.MaxLength,
			Numeric:   f.Numeric,
			Min:       f.Min,
			Max:       f.Max,
			Message:   f.Message,
		}
		if f.Pattern != "" {
			re, err := regexp.Compile(f.Pattern)
			if err != nil {
				return nil, fmt.Errorf("form schema: field %q: invalid pattern: %w", f.Name, err)
			}
			r.Pattern = re
		}
		rules = append(rules, validation.FieldRule{Field: f.Name, Rule: r})
	}
	return rules, nil
}

func (s *FormSchema) FieldMappings() []mapping.FieldMapping {
	out := make([]mapping.FieldMapping, 0, len(s.Mapping))
	for _, m := range s.Mapping {
		kind := mapping.ValueKind(m.Kind)
		if kind == "" {
			kind = mapping.KindString
		}
		out = append(out, mapping.FieldMapping{FormField: m.Form, RemoteField: m.Remote, Kind: kind})
	}
	return out
}

func (s *FormSchema) DerivedFields() mapping.DerivedFields {
	return mapping.DerivedFields{
		SourceField:         s.Derived.SourceField,
		SourceValue:         s.Derived.SourceValue,
		SubmittedAtField:    s.Derived.SubmittedAtField,
		StatusField:         s.Derived.StatusField,
		StatusValue:         s.Derived.StatusValue,
		EstimatedValueField: s.Derived.EstimatedValueField,
	}
}

func (c *Config) FileRules() validation.FileRules {
	return validation.FileRules{
		MaxSize:           c.Upload.MaxFileSize,
		MaxCount:          c.Upload.MaxFiles,
		AllowedTypes:      c.Upload.AllowedTypes,
		AllowedExtensions: c.Upload.AllowedExtensions,
	}
}
