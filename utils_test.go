package i18n

import (
	"reflect"
	"testing"
)

func assert_equal(t *testing.T, got string, expected string) {
	t.Helper()
	if expected != got {
		t.Logf("%q != %q", got, expected)
		t.Fail()
	}
}

func assertDeepEqual(t *testing.T, got, expected interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Logf("%v != %v", got, expected)
		t.Fail()
	}
}
