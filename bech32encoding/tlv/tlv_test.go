package tlv

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"lukechampine.com/frand"
)

func TestEncodeLayout(t *testing.T) {
	b, err := Encode([]Record{
		{Type: Default, Value: []byte{0xaa, 0xbb}},
		{Type: Relay, Value: []byte("wss://r")},
		{Type: 7, Value: nil},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0, 2, 0xaa, 0xbb, 1, 7}, "wss://r"...)
	want = append(want, 7, 0)
	if !bytes.Equal(b, want) {
		t.Fatalf("got %x want %x", b, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		var records []Record
		for j := frand.Intn(10); j > 0; j-- {
			records = append(records, Record{
				Type:  byte(frand.Intn(256)),
				Value: frand.Bytes(frand.Intn(MaxValueLen + 1)),
			})
		}
		b, err := Encode(records)
		if err != nil {
			t.Fatal(err)
		}
		again, err := Encode(records)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, again) {
			t.Fatal("encoding is not deterministic")
		}
		decoded, err := Decode(b)
		if err != nil {
			t.Fatal(err)
		}
		if len(decoded) != len(records) {
			t.Fatalf("got %d records want %d", len(decoded), len(records))
		}
		for j := range records {
			if decoded[j].Type != records[j].Type ||
				!bytes.Equal(decoded[j].Value, records[j].Value) {
				t.Fatalf("record %d differs", j)
			}
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	records, err := Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{"value runs past end", []byte{0, 32, 1, 2, 3}},
		{"last record truncated", []byte{0, 1, 9, 1, 5, 'w', 's'}},
		{"lone trailing byte", []byte{0, 1, 9, 1}},
		{"header only, length set", []byte{1, 1}},
	}
	for _, test := range tests {
		if _, err := Decode(test.b); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", test.name, err)
		}
	}
}

func TestDecodeKeepsUnknownTypes(t *testing.T) {
	records, err := Decode([]byte{9, 1, 'x', 0, 0, 200, 2, 'a', 'b'})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 || records[0].Type != 9 || records[2].Type != 200 ||
		len(records[1].Value) != 0 {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestValueTooLong(t *testing.T) {
	_, err := Encode([]Record{{Type: Relay, Value: make([]byte, MaxValueLen+1)}})
	if !errors.Is(err, ErrValueTooLong) {
		t.Fatalf("expected ErrValueTooLong, got %v", err)
	}
}

func TestReadEntryEOF(t *testing.T) {
	if _, _, err := ReadEntry(bytes.NewReader(nil)); err != io.EOF {
		t.Fatalf("expected io.EOF on empty reader, got %v", err)
	}
}
