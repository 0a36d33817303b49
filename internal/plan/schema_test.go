package plan

import (
	"fmt"
	"testing"
)

// Keywords accepted by OpenAI strict structured output. Anything outside
// this set makes the API reject the request before the model runs.
var strictModeKeywords = map[string]bool{
	"type":                 true,
	"properties":           true,
	"required":             true,
	"additionalProperties": true,
	"items":                true,
	"enum":                 true,
	"description":          true,
}

// checkStrictObject walks a schema node and fails on anything strict mode
// rejects: unsupported keywords, missing additionalProperties:false, or an
// object property absent from its required list.
func checkStrictObject(t *testing.T, path string, node map[string]any) {
	t.Helper()

	for kw := range node {
		if !strictModeKeywords[kw] {
			t.Errorf("%s: keyword %q is not supported in strict mode", path, kw)
		}
	}

	props, ok := node["properties"].(map[string]any)
	if ok {
		if ap, ok := node["additionalProperties"].(bool); !ok || ap {
			t.Errorf("%s: object schemas must set additionalProperties:false", path)
		}

		required := map[string]bool{}
		if reqs, ok := node["required"].([]any); ok {
			for _, r := range reqs {
				required[r.(string)] = true
			}
		}
		for name, sub := range props {
			if !required[name] {
				t.Errorf("%s: property %q missing from required", path, name)
			}
			if subNode, ok := sub.(map[string]any); ok {
				checkStrictObject(t, fmt.Sprintf("%s.%s", path, name), subNode)
			}
		}
	}

	if items, ok := node["items"].(map[string]any); ok {
		checkStrictObject(t, path+"[]", items)
	}
}

func TestPlanSchemaIsStrictModeCompatible(t *testing.T) {
	checkStrictObject(t, "plan", PlanSchema.Definition)
}
