package channel

import "testing"

func TestParseKey(t *testing.T) {
	for _, k := range Keys {
		got, err := ParseKey(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKey(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKey("birthday_channel"); err == nil {
		t.Error("ParseKey accepted a lower-case key")
	}
}
