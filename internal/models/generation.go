package models

// GeneratedUnit represents the emitted header/source pair for one bridge file
type GeneratedUnit struct {
	BridgeName string // stem of the bridge file that produced this unit
	HeaderPath string // path where the header should be written
	SourcePath string // path where the source should be written
	Header     string // generated C++ header content
	Source     string // generated C++ source content
	QObjects   int    // number of object types in this unit
	Signals    int    // number of signals in this unit
}
