package booking

import (
	"strconv"
	"strings"
)

// ZipRange is an inclusive run of zip codes.
type ZipRange struct {
	From int
	To   int
}

// ServiceArea is the immutable set of zip codes we dispatch to.
type ServiceArea struct {
	codes map[int]struct{}
}

// NewServiceArea unions every range (both ends inclusive) with the listed
// codes. Overlaps between inputs are harmless.
func NewServiceArea(ranges []ZipRange, codes []int) *ServiceArea {
	a := &ServiceArea{codes: make(map[int]struct{})}
	for _, r := range ranges {
		for z := r.From; z <= r.To; z++ {
			a.codes[z] = struct{}{}
		}
	}
	for _, z := range codes {
		a.codes[z] = struct{}{}
	}
	return a
}

// Contains reports membership of an already-parsed zip code.
func (a *ServiceArea) Contains(zip int) bool {
	_, ok := a.codes[zip]
	return ok
}

// Len is the number of distinct codes in the area.
func (a *ServiceArea) Len() int {
	return len(a.codes)
}

// IsServiceable strips every non-digit from input and checks the result
// against the area. Input that leaves no parseable number is simply not
// serviceable.
func (a *ServiceArea) IsServiceable(input string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
	if digits == "" {
		return false
	}
	zip, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	return a.Contains(zip)
}

// Phoenix metro coverage. Some codes appear in more than one city's list
// (85373, 85268, 85086); the set absorbs them.
var phoenixRanges = []ZipRange{
	// Phoenix
	{85001, 85024},
	{85026, 85038},
	{85040, 85046},
	{85050, 85051},
	{85053, 85054},
	{85060, 85064},
	{85066, 85072},
	{85078, 85080},
	{85082, 85083},
	{85085, 85086},
	// Tempe
	{85280, 85288},
	// Mesa
	{85201, 85210},
	{85212, 85216},
	{85274, 85277},
	// Chandler
	{85224, 85226},
	{85248, 85249},
	// Gilbert
	{85233, 85234},
	{85295, 85299},
	// Scottsdale
	{85250, 85251},
	{85254, 85259},
	// Glendale
	{85301, 85308},
	// Peoria
	{85381, 85383},
	// Surprise
	{85387, 85388},
}

var phoenixCodes = []int{
	// Phoenix
	85048, 85074, 85076,
	// Chandler
	85244, 85246, 85286,
	// Scottsdale
	85260, 85262, 85266, 85268,
	// Glendale
	85310,
	// Peoria
	85345, 85373,
	// Avondale
	85323, 85392,
	// Goodyear
	85326, 85338, 85395,
	// Tolleson
	85353,
	// Surprise
	85335, 85374, 85379,
	// Sun City / Sun City West
	85351, 85373, 85375,
	// Anthem / Desert Hills / New River
	85086, 85087,
	// Cave Creek
	85331,
	// Carefree
	85377,
	// Fountain Hills
	85268,
	// Queen Creek
	85142,
}

var defaultArea = NewServiceArea(phoenixRanges, phoenixCodes)

// DefaultServiceArea returns the Phoenix metro service area.
func DefaultServiceArea() *ServiceArea {
	return defaultArea
}

// IsServiceable checks input against the default service area.
func IsServiceable(input string) bool {
	return defaultArea.IsServiceable(input)
}
