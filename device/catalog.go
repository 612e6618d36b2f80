package device

// Catalog of known devices, keyed by IDCODE. Order matches the original
// per-family listings: Zynq-7 parts first, then Virtex UltraScale+.
var catalog = []*Device{
	{
		Name:          "xc7z010",
		IDCode:        0x03722093,
		WordsPerFrame: 101,
		SLRCount:      1,
		Tiles:         tilesXC7Z010,
	},
	{
		Name:          "xc7z015",
		IDCode:        0x0373B093,
		WordsPerFrame: 101,
		SLRCount:      1,
		Tiles:         tilesXC7Z015,
	},
	{
		Name:          "xc7z020",
		IDCode:        0x03727093,
		WordsPerFrame: 101,
		SLRCount:      1,
		Tiles:         tilesXC7Z020,
	},
	{
		Name:          "xcvu9p",
		IDCode:        0x04B31093,
		WordsPerFrame: 123,
		SLRCount:      3,
		Tiles:         tilesXCVU9P,
	},
}

// ByIDCode returns the device matching idcode, or *UnknownDeviceError if
// none is registered. Matches in listed order; first match wins.
func ByIDCode(idcode uint32) (*Device, error) {
	for _, d := range catalog {
		if d.IDCode == idcode {
			return d, nil
		}
	}
	return nil, &UnknownDeviceError{IDCode: idcode}
}

// ByName returns the device matching name, or *UnknownDeviceError if none
// is registered.
func ByName(name string) (*Device, error) {
	for _, d := range catalog {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, &UnknownDeviceError{Name: name}
}

// All returns every device in the catalog, in listed order.
func All() []*Device {
	out := make([]*Device, len(catalog))
	copy(out, catalog)
	return out
}
