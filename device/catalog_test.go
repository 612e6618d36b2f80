package device

import "testing"

func TestByIDCode(t *testing.T) {
	tests := []struct {
		name    string
		idcode  uint32
		want    string
		wantErr bool
	}{
		{"xc7z010", 0x03722093, "xc7z010", false},
		{"xc7z015", 0x0373B093, "xc7z015", false},
		{"xc7z020", 0x03727093, "xc7z020", false},
		{"xcvu9p", 0x04B31093, "xcvu9p", false},
		{"unknown idcode", 0xDEADBEEF, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ByIDCode(tt.idcode)
			if tt.wantErr {
				if !IsUnknownDevice(err) {
					t.Fatalf("expected UnknownDeviceError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Name != tt.want {
				t.Errorf("name = %q, want %q", d.Name, tt.want)
			}
		})
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("xc7z020"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ByName("nonexistent"); !IsUnknownDevice(err) {
		t.Fatalf("expected UnknownDeviceError, got %v", err)
	}
}

func TestTileTableSizes(t *testing.T) {
	tests := []struct {
		name      string
		idcode    uint32
		wantTiles int
	}{
		{"xc7z010", 0x03722093, 60},
		{"xc7z015", 0x0373B093, 95},
		{"xc7z020", 0x03727093, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ByIDCode(tt.idcode)
			if err != nil {
				t.Fatalf("ByIDCode: %v", err)
			}
			if len(d.Tiles) != tt.wantTiles {
				t.Errorf("len(Tiles) = %d, want %d", len(d.Tiles), tt.wantTiles)
			}
		})
	}
}

func TestTileAt(t *testing.T) {
	d, err := ByIDCode(0x03722093)
	if err != nil {
		t.Fatalf("ByIDCode: %v", err)
	}
	tile, ok := d.TileAt(0, 0, 0)
	if !ok {
		t.Fatal("expected tile at (0,0) to exist")
	}
	if tile.BitstreamOffsetBits != 0x00EB0AC0 {
		t.Errorf("BitstreamOffsetBits = 0x%X, want 0x00EB0AC0", tile.BitstreamOffsetBits)
	}

	if _, ok := d.TileAt(0, 99, 99); ok {
		t.Error("expected no tile at (99,99)")
	}
}

func TestTileCoordinatesUnique(t *testing.T) {
	for _, d := range All() {
		seen := make(map[[2]int]bool)
		for _, tile := range d.Tiles {
			key := [2]int{tile.X, tile.Y}
			if seen[key] {
				t.Errorf("%s: duplicate tile coordinate (%d,%d)", d.Name, tile.X, tile.Y)
			}
			seen[key] = true
		}
	}
}
