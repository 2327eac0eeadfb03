package lists

// Limit is implemented by zero-size marker types carrying the capacity of a list type.
// For example a List[Uint64, *Uint64, N1024] holds at most 1024 elements.
// Custom limits are declared the same way as the predefined ones:
//
//	type ValidatorRegistryLimit struct{}
//
//	func (ValidatorRegistryLimit) Limit() uint64 { return 1 << 40 }
type Limit interface {
	Limit() uint64
}

// Length is implemented by zero-size marker types carrying the length of a vector type.
type Length interface {
	Length() uint64
}

type N0 struct{}

func (N0) Limit() uint64 { return 0 }
func (N0) Length() uint64 { return 0 }

type N1 struct{}

func (N1) Limit() uint64 { return 1 }
func (N1) Length() uint64 { return 1 }

type N2 struct{}

func (N2) Limit() uint64 { return 2 }
func (N2) Length() uint64 { return 2 }

type N3 struct{}

func (N3) Limit() uint64 { return 3 }
func (N3) Length() uint64 { return 3 }

type N4 struct{}

func (N4) Limit() uint64 { return 4 }
func (N4) Length() uint64 { return 4 }

type N5 struct{}

func (N5) Limit() uint64 { return 5 }
func (N5) Length() uint64 { return 5 }

type N6 struct{}

func (N6) Limit() uint64 { return 6 }
func (N6) Length() uint64 { return 6 }

type N7 struct{}

func (N7) Limit() uint64 { return 7 }
func (N7) Length() uint64 { return 7 }

type N8 struct{}

func (N8) Limit() uint64 { return 8 }
func (N8) Length() uint64 { return 8 }

type N9 struct{}

func (N9) Limit() uint64 { return 9 }
func (N9) Length() uint64 { return 9 }

type N15 struct{}

func (N15) Limit() uint64 { return 15 }
func (N15) Length() uint64 { return 15 }

type N16 struct{}

func (N16) Limit() uint64 { return 16 }
func (N16) Length() uint64 { return 16 }

type N17 struct{}

func (N17) Limit() uint64 { return 17 }
func (N17) Length() uint64 { return 17 }

type N31 struct{}

func (N31) Limit() uint64 { return 31 }
func (N31) Length() uint64 { return 31 }

type N32 struct{}

func (N32) Limit() uint64 { return 32 }
func (N32) Length() uint64 { return 32 }

type N33 struct{}

func (N33) Limit() uint64 { return 33 }
func (N33) Length() uint64 { return 33 }

type N64 struct{}

func (N64) Limit() uint64 { return 64 }
func (N64) Length() uint64 { return 64 }

type N128 struct{}

func (N128) Limit() uint64 { return 128 }
func (N128) Length() uint64 { return 128 }

type N256 struct{}

func (N256) Limit() uint64 { return 256 }
func (N256) Length() uint64 { return 256 }

type N511 struct{}

func (N511) Limit() uint64 { return 511 }
func (N511) Length() uint64 { return 511 }

type N512 struct{}

func (N512) Limit() uint64 { return 512 }
func (N512) Length() uint64 { return 512 }

type N513 struct{}

func (N513) Limit() uint64 { return 513 }
func (N513) Length() uint64 { return 513 }

type N1024 struct{}

func (N1024) Limit() uint64 { return 1024 }
func (N1024) Length() uint64 { return 1024 }

type N2048 struct{}

func (N2048) Limit() uint64 { return 2048 }
func (N2048) Length() uint64 { return 2048 }

type N4096 struct{}

func (N4096) Limit() uint64 { return 4096 }
func (N4096) Length() uint64 { return 4096 }

type N8192 struct{}

func (N8192) Limit() uint64 { return 8192 }
func (N8192) Length() uint64 { return 8192 }

type N16384 struct{}

func (N16384) Limit() uint64 { return 16384 }
func (N16384) Length() uint64 { return 16384 }

type N65536 struct{}

func (N65536) Limit() uint64 { return 65536 }
func (N65536) Length() uint64 { return 65536 }

type N1048576 struct{}

func (N1048576) Limit() uint64 { return 1048576 }
func (N1048576) Length() uint64 { return 1048576 }

type N16777216 struct{}

func (N16777216) Limit() uint64 { return 16777216 }
func (N16777216) Length() uint64 { return 16777216 }

type N1099511627776 struct{}

func (N1099511627776) Limit() uint64 { return 1099511627776 }
func (N1099511627776) Length() uint64 { return 1099511627776 }
