package models

// ProductDetails is the extended spec sheet for a product. Every section is
// optional and independently absent: a missing section is simply not shown,
// never an error.
type ProductDetails struct {
	Overview *OverviewSpec `json:"overview,omitempty"`
	Hardware *HardwareSpec `json:"hardware,omitempty"`
	Software *SoftwareSpec `json:"software,omitempty"`
	Features *FeaturesSpec `json:"features,omitempty"`
}

type OverviewSpec struct {
	Streams        int           `json:"streams"`
	CoverageArea   *CoverageArea `json:"coverageArea,omitempty"`
	MaxClientCount string        `json:"maxClientCount"`
	Uplink         string        `json:"uplink"`
	Mounting       []string      `json:"mounting"`
	PowerMethod    string        `json:"powerMethod"`
	Frequency      string        `json:"frequency"`
}

type CoverageArea struct {
	SquareMeters int `json:"squareMeters"`
	SquareFeet   int `json:"squareFeet"`
}

type HardwareSpec struct {
	Dimensions                  *Dimensions           `json:"dimensions,omitempty"`
	Weight                      Weight                `json:"weight"`
	MaxPowerConsumption         string                `json:"maxPowerConsumption"`
	VoltageRange                string                `json:"voltageRange"`
	NetworkingInterfaces        []string              `json:"networkingInterfaces"`
	EnclosureMaterial           []string              `json:"enclosureMaterial"`
	MountMaterial               []string              `json:"mountMaterial"`
	LEDs                        []string              `json:"leds"`
	SystemBus                   string                `json:"systemBus"`
	ChannelBandwidth            []string              `json:"channelBandwidth"`
	NDAACompliant               bool                  `json:"ndaaCompliant"`
	Certifications              []string              `json:"certifications"`
	OperatingFrequency          *OperatingFrequency   `json:"operatingFrequency,omitempty"`
	AmbientOperatingTemperature *OperatingTemperature `json:"ambientOperatingTemperature,omitempty"`
}

type Dimensions struct {
	Millimeters string `json:"millimeters"`
	Inches      string `json:"inches"`
}

type Weight struct {
	Kilograms float64 `json:"kilograms"`
	Pounds    int     `json:"pounds"`
}

type OperatingFrequency struct {
	USCA      []string `json:"us_ca"`
	Worldwide []string `json:"worldwide"`
}

type OperatingTemperature struct {
	Celsius    string `json:"celsius"`
	Fahrenheit string `json:"fahrenheit"`
}

type SoftwareSpec struct {
	UnifiNetwork string     `json:"unifiNetwork"`
	MobileApp    *MobileApp `json:"mobileApp,omitempty"`
}

type MobileApp struct {
	IOS     string `json:"ios"`
	Android string `json:"android"`
}

type FeaturesSpec struct {
	Wireless      []string `json:"wireless"`
	CaptivePortal []string `json:"captivePortal"`
	Security      []string `json:"security"`
}
