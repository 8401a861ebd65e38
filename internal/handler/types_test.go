package handler

import (
	"encoding/json"
	"testing"
)

func TestOptionalIntUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int64
		set     bool
		wantErr bool
	}{
		{"number", `{"v": 5000}`, 5000, true, false},
		{"fractional truncates", `{"v": 3.9}`, 3, true, false},
		{"numeric string", `{"v": "1234"}`, 1234, true, false},
		{"null", `{"v": null}`, 0, false, false},
		{"absent", `{}`, 0, false, false},
		{"empty string", `{"v": ""}`, 0, false, false},
		{"garbage string", `{"v": "abc"}`, 0, false, true},
		{"bool", `{"v": true}`, 0, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dst struct {
				V OptionalInt `json:"v"`
			}
			err := json.Unmarshal([]byte(tc.payload), &dst)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value %+v", dst.V)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dst.V.Set != tc.set {
				t.Fatalf("expected set=%v got %v", tc.set, dst.V.Set)
			}
			if dst.V.Value != tc.want {
				t.Fatalf("expected %d got %d", tc.want, dst.V.Value)
			}
		})
	}
}

func TestOptionalFloatUnmarshal(t *testing.T) {
	var dst struct {
		A OptionalFloat `json:"a"`
		B OptionalFloat `json:"b"`
		C OptionalFloat `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": 20.5, "b": "31.25", "c": null}`), &dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dst.A.Set || dst.A.Value != 20.5 {
		t.Fatalf("unexpected a: %+v", dst.A)
	}
	if !dst.B.Set || dst.B.Value != 31.25 {
		t.Fatalf("unexpected b: %+v", dst.B)
	}
	if dst.C.Set {
		t.Fatalf("expected c unset, got %+v", dst.C)
	}
}

func TestOptionalIntPtr(t *testing.T) {
	unset := OptionalInt{}
	if unset.Ptr() != nil {
		t.Fatal("expected nil pointer for unset value")
	}

	set := OptionalInt{Value: 7, Set: true}
	p := set.Ptr()
	if p == nil || *p != 7 {
		t.Fatalf("unexpected pointer %v", p)
	}
}
