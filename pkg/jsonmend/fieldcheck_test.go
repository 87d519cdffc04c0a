package jsonmend_test

import (
	"testing"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

func TestValidSemver(t *testing.T) {
	valid := []string{"0.0.1", "1.0.0", "10.20.30", "1.0.0-alpha", "1.0.0+build.7"}
	for _, s := range valid {
		if !jsonmend.ValidSemver(s) {
			t.Errorf("ValidSemver(%q) = false", s)
		}
	}
	invalid := []string{"", "1", "1.0", "v1.0.0", "latest", ".1.0.0"}
	for _, s := range invalid {
		if jsonmend.ValidSemver(s) {
			t.Errorf("ValidSemver(%q) = true", s)
		}
	}
}

func TestValidPackageName(t *testing.T) {
	valid := []string{"lodash", "my-pkg", "my.pkg", "@scope/pkg", "@types/node"}
	for _, s := range valid {
		if !jsonmend.ValidPackageName(s) {
			t.Errorf("ValidPackageName(%q) = false", s)
		}
	}
	invalid := []string{"", "UPPER", " spaced name", "@/pkg", "@scope/", "-leading"}
	for _, s := range invalid {
		if jsonmend.ValidPackageName(s) {
			t.Errorf("ValidPackageName(%q) = true", s)
		}
	}
}
