package vpack

import "testing"

func TestUUIDStringRoundTrip(t *testing.T) {
	id := GenerateUUID()
	var got UUID
	if err := got.FromString(id.String()); err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if got != id {
		t.Fatal("UUID did not round-trip through String/FromString")
	}
}

func TestUUIDJSONRoundTrip(t *testing.T) {
	id := GenerateUUID()
	data, err := id.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var got UUID
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got != id {
		t.Fatal("UUID did not round-trip through JSON")
	}
}

func TestUUIDAsNativeField(t *testing.T) {
	RequireLittleEndianHost()
	buf := make([]byte, UUIDSize)
	id := GenerateUUID()
	StoreNativePOD(buf, id)
	got := LoadNativePOD[UUID](buf)
	if got != id {
		t.Fatal("UUID did not round-trip through native pass-through load/store")
	}
}

func TestUUIDUnmarshalJSONNull(t *testing.T) {
	var u UUID
	if err := u.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("UnmarshalJSON(null): %v", err)
	}
}
