package model

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Validate checks raw JSON against the document schema. Used by tests and by
// Repair's fast path; callers loading persisted state should prefer Repair,
// which never fails.
func Validate(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	errs := &SchemaError{}
	for _, e := range res.Errors() {
		errs.Problems = append(errs.Problems, e.String())
	}
	return errs
}

// SchemaError reports the individual schema violations found in a document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	msg := "document schema validation failed"
	for _, p := range e.Problems {
		msg += "; " + p
	}
	return msg
}

// Repair turns persisted bytes into a usable document no matter what. A
// well-formed document passes through unchanged; anything else is repaired
// root field by root field, falling back to defaults for whatever cannot be
// recovered. Repair never returns an error: storage corruption must not
// crash the application on load.
func Repair(raw []byte) Document {
	doc := DefaultDocument()
	if len(raw) == 0 {
		return doc
	}

	// Fast path: schema-valid documents decode directly.
	if Validate(raw) == nil {
		var full Document
		if err := json.Unmarshal(raw, &full); err == nil {
			return Normalize(full)
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return doc
	}

	if b, ok := fields["personalInfo"]; ok {
		var p PersonalInfo
		if json.Unmarshal(b, &p) == nil {
			doc.PersonalInfo = p
		}
	}
	if b, ok := fields["summary"]; ok {
		var s string
		if json.Unmarshal(b, &s) == nil {
			doc.Summary = s
		}
	}
	if b, ok := fields["experience"]; ok {
		var e []Experience
		if json.Unmarshal(b, &e) == nil && e != nil {
			doc.Experience = e
		}
	}
	if b, ok := fields["internships"]; ok {
		var e []Experience
		if json.Unmarshal(b, &e) == nil && e != nil {
			doc.Internships = e
		}
	}
	if b, ok := fields["projects"]; ok {
		var p []Project
		if json.Unmarshal(b, &p) == nil && p != nil {
			doc.Projects = p
		}
	}
	if b, ok := fields["education"]; ok {
		var e []Education
		if json.Unmarshal(b, &e) == nil && e != nil {
			doc.Education = e
		}
	}
	if b, ok := fields["skills"]; ok {
		var s []string
		if json.Unmarshal(b, &s) == nil && s != nil {
			doc.Skills = s
		}
	}
	if b, ok := fields["customSections"]; ok {
		var c []CustomSection
		if json.Unmarshal(b, &c) == nil && c != nil {
			doc.CustomSections = c
		}
	}

	return Normalize(doc)
}
