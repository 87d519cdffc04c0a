package jsonmend_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

func TestManifestSchema(t *testing.T) {
	schema := jsonmend.ManifestSchema()
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("schema does not marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"name"`, `"version"`, `"required"`} {
		if !strings.Contains(s, want) {
			t.Errorf("schema lacks %s: %s", want, s)
		}
	}
}
