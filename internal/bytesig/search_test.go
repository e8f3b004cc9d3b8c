package bytesig

import "testing"

func TestIndex(t *testing.T) {
	cases := []struct {
		name   string
		hay    []byte
		needle []byte
		want   int
	}{
		{"simple match", []byte("hello world"), []byte("world"), 6},
		{"no match", []byte("hello world"), []byte("xyz"), -1},
		{"needle longer than haystack", []byte("ab"), []byte("abc"), -1},
		{"empty needle matches at 0", []byte("abc"), []byte{}, 0},
		{"embedded zero bytes in haystack", []byte{0x41, 0x00, 0x42, 0x00, 0x43}, []byte{0x42, 0x00, 0x43}, 2},
		{"embedded zero bytes in needle", []byte{0x00, 0x01, 0x00, 0x02}, []byte{0x01, 0x00, 0x02}, 1},
		{"match at end", []byte("abcdef"), []byte("def"), 3},
		{"match at start", []byte("abcdef"), []byte("abc"), 0},
		{"single byte needle", []byte("abcabc"), []byte("c"), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Index(c.hay, c.needle)
			if got != c.want {
				t.Errorf("Index(%v, %v) = %d, want %d", c.hay, c.needle, got, c.want)
			}
		})
	}
}

func TestIndex_HaystackShorterThanNeedle(t *testing.T) {
	if got := Index([]byte{1, 2}, []byte{1, 2, 3}); got != -1 {
		t.Errorf("Index with haystack_len < needle_len = %d, want -1", got)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]byte("needle in a haystack"), []byte("haystack")) {
		t.Error("Contains returned false for present needle")
	}
	if Contains([]byte("haystack"), []byte("needle")) {
		t.Error("Contains returned true for absent needle")
	}
}
