package blake2b

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func TestSum512KnownAnswers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			in:   "",
			want: "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		},
		{
			in:   "abc",
			want: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		},
	}
	for _, c := range cases {
		got := Sum512([]byte(c.in))
		want := mustHex(t, c.want)
		if !bytes.Equal(got[:], want) {
			t.Errorf("Sum512(%q) = %x, want %x", c.in, got, want)
		}
	}
}

func TestKeyedSum512KnownAnswer(t *testing.T) {
	key := make([]byte, 64)
	for i := range key {
		key[i] = byte(i)
	}
	input := make([]byte, 128)
	for i := range input {
		input[i] = byte(i)
	}
	want := mustHex(t, "72065ee4dd91c2d8509fa1fc28a37c7fc9fa7d5b3f8ad3d0d7a25626b57b1b44788d4caf806290425f9890a3a2a35a905ab4b37acfd0da6e4517b2525c9651e4")

	got, err := SumKeyed(key, input, MaxSize)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("keyed Sum512 = %x, want %x", got, want)
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	data := bytes.Repeat([]byte("tinyblake"), 100)
	want := Sum512(data)

	h, err := New512()
	if err != nil {
		t.Fatal(err)
	}
	for _, chunk := range splitChunks(data, 7) {
		if _, err := h.Write(chunk); err != nil {
			t.Fatal(err)
		}
	}
	got := h.Sum(nil)
	if !bytes.Equal(got, want[:]) {
		t.Errorf("incremental write mismatch: got %x, want %x", got, want)
	}
}

func splitChunks(data []byte, n int) [][]byte {
	var out [][]byte
	for len(data) > 0 {
		if n > len(data) {
			n = len(data)
		}
		out = append(out, data[:n])
		data = data[n:]
	}
	return out
}

func TestSumIsNonDestructive(t *testing.T) {
	h, err := New256()
	if err != nil {
		t.Fatal(err)
	}
	_, _ = h.Write([]byte("some input"))
	first := h.Sum(nil)
	second := h.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Errorf("repeated Sum diverged: %x vs %x", first, second)
	}
	_, _ = h.Write([]byte(" more"))
	third := h.Sum(nil)
	if bytes.Equal(first, third) {
		t.Errorf("Sum after further writes did not change")
	}
}

func TestOutputLengthSensitivity(t *testing.T) {
	data := []byte("tinyblake")
	h32, err := New(&Config{Size: 32})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = h32.Write(data)
	d32 := h32.Sum(nil)

	h64, err := New(&Config{Size: 64})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = h64.Write(data)
	d64 := h64.Sum(nil)

	if bytes.Equal(d32, d64[:32]) {
		t.Errorf("32-byte digest should not equal the truncated 64-byte digest")
	}
}

func TestKeyedHashRequiresNonEmptyKey(t *testing.T) {
	if _, err := NewMAC(64, nil); err == nil {
		t.Error("NewMAC with empty key should fail")
	}
}

func TestParameterSensitivity(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	person := bytes.Repeat([]byte{0x02}, PersonSize)

	base, err := New(&Config{Size: 32})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = base.Write([]byte("x"))
	baseSum := base.Sum(nil)

	salted, err := New(&Config{Size: 32, Salt: salt})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = salted.Write([]byte("x"))
	saltedSum := salted.Sum(nil)

	personalized, err := New(&Config{Size: 32, Person: person})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = personalized.Write([]byte("x"))
	personalizedSum := personalized.Sum(nil)

	if bytes.Equal(baseSum, saltedSum) || bytes.Equal(baseSum, personalizedSum) || bytes.Equal(saltedSum, personalizedSum) {
		t.Error("salt/person should each change the digest")
	}
}

func TestResetRestoresKeyedState(t *testing.T) {
	key := []byte("a shared secret key")
	h, err := NewMAC(64, key)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = h.Write([]byte("first message"))
	first := h.Sum(nil)

	h.Reset()
	_, _ = h.Write([]byte("first message"))
	second := h.Sum(nil)

	if !bytes.Equal(first, second) {
		t.Errorf("Reset should make the Hash reusable with identical results: %x vs %x", first, second)
	}
}

func TestConfigRejectsBadSizes(t *testing.T) {
	if _, err := New(&Config{Size: 65}); err == nil {
		t.Error("Size > 64 should be rejected")
	}
	if _, err := New(&Config{Salt: []byte("too short")}); err == nil {
		t.Error("short Salt should be rejected")
	}
	if _, err := New(&Config{Person: []byte("too short")}); err == nil {
		t.Error("short Person should be rejected")
	}
}

func TestRepeatedStatesAgree(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 513)
	out1 := make([]byte, MaxSize)
	out2 := make([]byte, MaxSize)

	var s1, s2 State
	if err := s1.Init(MaxSize); err != nil {
		t.Fatal(err)
	}
	if err := s2.Init(MaxSize); err != nil {
		t.Fatal(err)
	}
	if err := s1.Update(data); err != nil {
		t.Fatal(err)
	}
	if err := s2.Update(data); err != nil {
		t.Fatal(err)
	}
	if err := s1.Final(out1); err != nil {
		t.Fatal(err)
	}
	if err := s2.Final(out2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out1, out2) {
		t.Errorf("two identically-driven states diverged: %x vs %x", out1, out2)
	}
}
