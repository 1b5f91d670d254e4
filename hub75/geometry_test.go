package hub75

import "testing"

func TestGeometryValidate(t *testing.T) {
	cases := []struct {
		name string
		geo  Geometry
		ok   bool
	}{
		{"32x16/8-scan", Geometry{32, 16, 2, false}, true},
		{"32x32/16-scan", Geometry{32, 32, 2, false}, true},
		{"64x32/16-scan", Geometry{64, 32, 2, false}, true},
		{"64x64/32-scan+E", Geometry{64, 64, 2, true}, true},
		{"32x16/4-scan unsupported", Geometry{32, 16, 4, false}, false},
		{"32x32/8-scan unsupported", Geometry{32, 32, 4, false}, false},
		{"unknown width", Geometry{128, 64, 2, true}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.geo.Validate()
			if c.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !c.ok && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestGeometryClosure(t *testing.T) {
	for _, geo := range SupportedGeometries {
		rows := geo.Rows()
		if rows != geo.Height/geo.RowsInParallel {
			t.Errorf("%+v: Rows() = %d, want %d", geo, rows, geo.Height/geo.RowsInParallel)
		}
		if geo.PixelsPerLatch() != geo.Width {
			t.Errorf("%+v: PixelsPerLatch() = %d, want %d", geo, geo.PixelsPerLatch(), geo.Width)
		}
		wantBits := 4
		if geo.HasE {
			wantBits = 5
		}
		if geo.RowAddressBits() != wantBits {
			t.Errorf("%+v: RowAddressBits() = %d, want %d", geo, geo.RowAddressBits(), wantBits)
		}
	}
}
