package openai

import (
	"github.com/leofalp/oaikit/core/catalog"
	"github.com/leofalp/oaikit/core/wirepatch"
)

// PatchRules returns the rewrites that turn ordinal-encoded enum fields of a
// pre-serialized family body into wire strings: the model of text bodies, the
// model and every role of chat bodies, the size of image bodies.
func PatchRules(family Family) []wirepatch.Rule {
	switch family {
	case FamilyText:
		return []wirepatch.Rule{
			{Field: "model", Mapping: catalog.Mapping(catalog.KindText)},
		}
	case FamilyChat:
		return []wirepatch.Rule{
			{Field: "model", Mapping: catalog.Mapping(catalog.KindChat)},
			{Field: "role", Mapping: catalog.Mapping(catalog.KindRole)},
		}
	case FamilyImage:
		return []wirepatch.Rule{
			{Field: "size", Mapping: catalog.Mapping(catalog.KindImageSize)},
		}
	}
	return nil
}
