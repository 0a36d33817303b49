package plan

import "testing"

func TestCleanResponsePassthrough(t *testing.T) {
	in := `{"lessons":[]}`
	if got := CleanResponse(in); got != in {
		t.Errorf("CleanResponse(%q) = %q", in, got)
	}
}

func TestCleanResponseStripsFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```json{\"a\":1}```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := CleanResponse(tt.in); got != tt.want {
			t.Errorf("CleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanResponseUnwrapsStringEncoded(t *testing.T) {
	in := `"{\"lessons\":[{\"id\":\"1\"}]}"`
	want := `{"lessons":[{"id":"1"}]}`
	if got := CleanResponse(in); got != want {
		t.Errorf("CleanResponse = %q, want %q", got, want)
	}
}

func TestCleanResponseUnwrapsEscapedNewlines(t *testing.T) {
	in := "\"{\\\"a\\\":\\n1}\""
	want := "{\"a\":\n1}"
	if got := CleanResponse(in); got != want {
		t.Errorf("CleanResponse = %q, want %q", got, want)
	}
}

func TestCleanResponseFencedAndStringEncoded(t *testing.T) {
	in := "```json\n\"{\\\"a\\\":1}\"\n```"
	want := `{"a":1}`
	if got := CleanResponse(in); got != want {
		t.Errorf("CleanResponse = %q, want %q", got, want)
	}
}

func TestCleanResponseLeavesPlainStrings(t *testing.T) {
	// A short quoted value that is not a wrapped document still unwraps one
	// level; a single quote character must survive untouched.
	if got := CleanResponse(`"`); got != `"` {
		t.Errorf("CleanResponse(%q) = %q", `"`, got)
	}
}
