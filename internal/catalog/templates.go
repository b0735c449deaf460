package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/liftlog/internal/models"
)

// Clone returns a catalog that can take extra templates without
// touching the receiver.
func (c *Catalog) Clone() *Catalog {
	cp := &Catalog{
		defs:      c.defs,
		byID:      c.byID,
		templates: append([]Template(nil), c.templates...),
	}
	return cp
}

// ParseTemplatesTOML decodes user templates:
//
//	[[template]]
//	id = "upper"
//	name = "Upper day"
//	exercises = ["bb_bench", "db_row"]
func ParseTemplatesTOML(data []byte) ([]Template, error) {
	var imp models.TemplateImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}

	templates := make([]Template, 0, len(imp.Templates))
	for _, t := range imp.Templates {
		templates = append(templates, Template{
			ID:          t.ID,
			Key:         t.ID,
			Name:        t.Name,
			Description: t.Description,
			ExerciseIDs: t.Exercises,
			CreatedFrom: "custom",
		})
	}
	return templates, nil
}

// LoadTemplatesTOML parses and registers templates. Nothing is added
// when any template references an unknown exercise.
func (c *Catalog) LoadTemplatesTOML(data []byte) ([]Template, error) {
	templates, err := ParseTemplatesTOML(data)
	if err != nil {
		return nil, err
	}

	staged := c.Clone()
	for _, t := range templates {
		if err := staged.AddTemplate(t); err != nil {
			return nil, err
		}
	}
	c.templates = staged.templates
	return templates, nil
}
