package profile

// Values shared by every known model
var (
	SharedSystemPerformanceParameters = SystemPerformanceParameters{
		IntelligentCooling: 0x000FB001,
		ExtremePerformance: 0x0012B001,
		BatterySaving:      0x0013B001,
	}
	SharedSystemPerformanceBits = SystemPerformanceBits{
		IntelligentCooling: Same(0x0),
		ExtremePerformance: Same(0x1),
		BatterySaving:      Same(0x2),
	}
	SharedConservationParameters = FeatureParameters{
		Enable:  0x03,
		Disable: 0x05,
	}
	SharedRapidChargeParameters = FeatureParameters{
		Enable:  0x07,
		Disable: 0x08,
	}
)

// The embedded controller lives under a different LPC bridge name on Intel and AMD models
const (
	lpcIntel = `\_SB.PCI0.LPCB.EC0`
	lpcAMD   = `\_SB.PCI0.LPC0.EC0`
)

func newProfile(name string, ec string, products ...string) Profile {
	return Profile{
		Name:                 name,
		ExpectedProductNames: products,
		SystemPerformance: SystemPerformance{
			Commands: SystemPerformanceCommands{
				Set:     ec + `.VPC0.DYTC`,
				GetFCMO: ec + `.FCMO`,
				GetSPMO: ec + `.SPMO`,
			},
			Bits:       SharedSystemPerformanceBits,
			Parameters: SharedSystemPerformanceParameters,
		},
		Battery: Battery{
			SetCommand: ec + `.VPC0.SBMC`,
			Conservation: Feature{
				GetCommand: ec + `.BTSM`,
				Parameters: SharedConservationParameters,
			},
			RapidCharge: Feature{
				GetCommand: ec + `.QCHO`,
				Parameters: SharedRapidChargeParameters,
			},
		},
	}
}

// Ideapad15IIL05 is the Intel IdeaPad 5 15IIL05
func Ideapad15IIL05() Profile {
	return newProfile("IDEAPAD_15IIL05", lpcIntel, "81YK")
}

// IdeapadAMD covers the AMD IdeaPad 5 models
func IdeapadAMD() Profile {
	return newProfile("IDEAPAD_AMD", lpcAMD, "81YQ", "81YM")
}

// SearchPath returns the built-in profiles in the order they are matched
func SearchPath() []Profile {
	return []Profile{
		Ideapad15IIL05(),
		IdeapadAMD(),
	}
}
