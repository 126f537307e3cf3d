package entity

import (
	"time"
)

type VariableType string

const (
	VariableTypeString VariableType = "String"
	VariableTypeLong   VariableType = "Long"
)

// TemplateVariable declares one variable a template accepts. The declared set
// must be a superset of the keys supplied at dispatch time.
type TemplateVariable struct {
	Name string       `json:"name" firestore:"name"`
	Type VariableType `json:"type" firestore:"type"`
}

// MailTemplate is a named, locale-keyed email definition. Subject, description,
// body and label maps are keyed by locale code (e.g. "en-US").
type MailTemplate struct {
	ID           string             `json:"id" firestore:"id"`
	Name         string             `json:"name" firestore:"name"`
	Subjects     map[string]string  `json:"subjects" firestore:"subjects"`
	Descriptions map[string]string  `json:"descriptions" firestore:"descriptions"`
	Bodies       map[string]string  `json:"bodies" firestore:"bodies"`
	Labels       map[string]string  `json:"labels" firestore:"labels"`
	Variables    []TemplateVariable `json:"variables" firestore:"variables"`
	CreatedAt    time.Time          `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time          `json:"updated_at,omitempty" firestore:"updatedAt"`
}

func (t *MailTemplate) DeclaresVariable(name string) bool {
	for _, v := range t.Variables {
		if v.Name == name {
			return true
		}
	}
	return false
}
