// Package testmeta builds a compact in-memory set of numbering plans
// covering a couple of dozen calling codes. The plans are deliberately
// simplified: they keep just enough structure (formats, prefixes, length
// data) to exercise every parsing, validation and formatting path without
// shipping full production metadata.
package testmeta

import (
	"github.com/davidleathers/phonekit/metadata"
)

func desc(pattern, example string, lengths ...int) *metadata.Desc {
	return &metadata.Desc{
		NationalNumberPattern: pattern,
		PossibleLength:        lengths,
		ExampleNumber:         example,
	}
}

func format(pattern, form string, leading ...string) *metadata.NumberFormat {
	return &metadata.NumberFormat{
		Pattern:       pattern,
		Format:        form,
		LeadingDigits: leading,
	}
}

func withNationalRule(f *metadata.NumberFormat, rule string) *metadata.NumberFormat {
	f.NationalPrefixFormattingRule = rule
	return f
}

func withCarrierRule(f *metadata.NumberFormat, rule string) *metadata.NumberFormat {
	f.DomesticCarrierCodeFormattingRule = rule
	return f
}

// NewStore assembles the fixture plans. It panics on an inconsistent
// fixture, which can only happen from an edit to this file.
func NewStore() *metadata.Store {
	store, err := metadata.NewStore(regions())
	if err != nil {
		panic(err)
	}
	return store
}

func regions() []*metadata.Region {
	return []*metadata.Region{
		unitedStates(),
		bahamas(),
		canada(),
		unitedKingdom(),
		germany(),
		italy(),
		australia(),
		argentina(),
		mexico(),
		newZealand(),
		singapore(),
		japan(),
		southKorea(),
		andorra(),
		china(),
		brazil(),
		russia(),
		poland(),
		belarus(),
		uzbekistan(),
		colombia(),
		unitedArabEmirates(),
		reunion(),
		mayotte(),
		saintHelena(),
		universalTollFree(),
		universalPremiumRate(),
		sharedCostNetwork(),
	}
}

func unitedStates() *metadata.Region {
	usPattern := `[13-689]\d{9}|2[0-35-9]\d{8}`
	general := desc(usPattern, "", 10)
	general.PossibleLengthLocalOnly = []int{7}
	return &metadata.Region{
		ID:                  "US",
		CountryCode:         1,
		InternationalPrefix: "011",
		NationalPrefix:      "1",
		PreferredExtnPrefix: " extn. ",
		MainCountryForCode:  true,
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d{3})(\d{4})`, "$1 $2"),
			format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3"),
		},
		GeneralDesc:             general,
		FixedLine:               desc(usPattern, "6502530000"),
		Mobile:                  desc(usPattern, "6502530000"),
		TollFree:                desc(`8(?:00|66|77|88)\d{7}`, "8002530000"),
		PremiumRate:             desc(`900\d{7}`, "9002530000"),
		NoInternationalDialling: desc(`800\d{7}`, "", 10),
	}
}

func bahamas() *metadata.Region {
	general := desc(`(?:242|8(?:00|66|77|88)|900)\d{7}`, "", 10)
	general.PossibleLengthLocalOnly = []int{7}
	return &metadata.Region{
		ID:                  "BS",
		CountryCode:         1,
		InternationalPrefix: "011",
		NationalPrefix:      "1",
		GeneralDesc:         general,
		FixedLine:           desc(`2423[236]\d{5}`, "2423651234"),
		Mobile:              desc(`242357\d{4}`, "2423570000"),
		TollFree:            desc(`8(?:00|66|77|88)\d{7}`, "8002530000"),
	}
}

func canada() *metadata.Region {
	return &metadata.Region{
		ID:                  "CA",
		CountryCode:         1,
		InternationalPrefix: "011",
		NationalPrefix:      "1",
		GeneralDesc:         desc(`[1-9]\d{9}`, "", 10),
	}
}

func unitedKingdom() *metadata.Region {
	general := desc(`[1-9]\d{9}`, "", 10)
	general.PossibleLengthLocalOnly = []int{7, 8, 9}
	return &metadata.Region{
		ID:                  "GB",
		CountryCode:         44,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		MainCountryForCode:  true,
		NumberFormats: []*metadata.NumberFormat{
			withNationalRule(format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", `[1-59]|[78]0`), "(0$1)"),
			withNationalRule(format(`(\d{4})(\d{3})(\d{3})`, "$1 $2 $3", `[78]`), "(0$1)"),
		},
		GeneralDesc:    general,
		FixedLine:      desc(`2\d{9}`, "2012345678"),
		Mobile:         desc(`7[1-57-9]\d{8}`, "7912345678"),
		TollFree:       desc(`80\d{8}`, "8012345678"),
		PremiumRate:    desc(`9[018]\d{8}`, "9187654321"),
		SharedCost:     desc(`843\d{7}`, "8431231234"),
		VoIP:           desc(`56\d{8}`, "5631231234"),
		PersonalNumber: desc(`70\d{8}`, "7031231234"),
	}
}

func germany() *metadata.Region {
	general := desc(`[1-9]\d{3,10}`, "", 4, 5, 6, 7, 8, 9, 10, 11)
	general.PossibleLengthLocalOnly = []int{2, 3}
	fixed := desc(`(?:[24-6]\d{2}|3[03-9]\d|[789](?:0[2-9]|[1-9]\d))\d{1,8}`, "30123456")
	fixed.PossibleLengthLocalOnly = []int{2, 3}
	return &metadata.Region{
		ID:                  "DE",
		CountryCode:         49,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		NumberFormats: []*metadata.NumberFormat{
			withNationalRule(format(`(\d{2})(\d{3,11})`, "$1/$2", `3[02]|40|[68]9`), "0$1"),
			withNationalRule(format(`(\d{3})(\d{3,11})`, "$1 $2", `2(?:0[1-389]|9\d)`), "0$1"),
			withNationalRule(format(`(\d{4})(\d{2,11})`, "$1 $2", `[4-8]|9(?:0[2-9]|[1-9]\d)`), "0$1"),
			withNationalRule(format(`(\d{5})(\d{3,11})`, "$1 $2", `3`), "0$1"),
			withNationalRule(format(`(\d{4})(\d{7})`, "$1 $2", `15`), "0$1"),
			withNationalRule(format(`(\d{3})(\d{3,4})(\d{4})`, "$1 $2 $3", `900`), "0$1"),
		},
		GeneralDesc: general,
		FixedLine:   fixed,
		Mobile:      desc(`1(?:5\d{9}|7\d{8})`, "15123456789", 10, 11),
		TollFree:    desc(`800\d{7}`, "8001234567", 10),
		PremiumRate: desc(`900([135]\d{6}|9\d{7})`, "9001234567", 10, 11),
	}
}

func italy() *metadata.Region {
	return &metadata.Region{
		ID:                  "IT",
		CountryCode:         39,
		InternationalPrefix: "00",
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", `0`),
			format(`(\d{3})(\d{3})(\d{3})`, "$1 $2 $3", `3`),
		},
		GeneralDesc: desc(`0\d{9}|3\d{8}`, "", 9, 10),
		FixedLine:   desc(`0\d{9}`, "0212345678", 10),
		Mobile:      desc(`3\d{8}`, "312345678", 9),
	}
}

func australia() *metadata.Region {
	return &metadata.Region{
		ID:                           "AU",
		CountryCode:                  61,
		InternationalPrefix:          `001[12]`,
		PreferredInternationalPrefix: "0011",
		NationalPrefix:               "0",
		NumberFormats: []*metadata.NumberFormat{
			withNationalRule(format(`(\d)(\d{4})(\d{4})`, "$1 $2 $3", `[2-478]`), "0$1"),
			format(`(\d{4})(\d{3})(\d{3})`, "$1 $2 $3", `1`),
		},
		GeneralDesc: desc(`[1-578]\d{4,14}`, "", 9, 10),
		FixedLine:   desc(`[2378]\d{8}`, "236618300", 9),
		Mobile:      desc(`4\d{8}`, "412345678", 9),
		TollFree:    desc(`1800\d{6}`, "1800123456", 10),
	}
}

func argentina() *metadata.Region {
	return &metadata.Region{
		ID:                          "AR",
		CountryCode:                 54,
		InternationalPrefix:         "00",
		NationalPrefix:              "0",
		NationalPrefixForParsing:    `0(?:(11|343|3715)15)?`,
		NationalPrefixTransformRule: "9$1",
		NumberFormats: []*metadata.NumberFormat{
			format(`([68]\d{2})(\d{3})(\d{4})`, "$1-$2-$3", `[68]`),
			withNationalRule(format(`(\d{2})(\d{4})(\d{4})`, "$1 $2-$3", `[17]`), "0$1"),
			withNationalRule(format(`(\d)(\d{2})(\d{4})(\d{4})`, "$2 15 $3-$4", `911`), "0$1"),
			withCarrierRule(
				withNationalRule(format(`(\d)(\d{4})(\d{2})(\d{4})`, "$2 $3-$4", `9`), "0$1"),
				"0$1 $CC"),
			withNationalRule(format(`(\d{4})(\d{2})(\d{4})`, "$1 $2-$3", `[23]`), "0$1"),
		},
		IntlNumberFormats: []*metadata.NumberFormat{
			format(`([68]\d{2})(\d{3})(\d{4})`, "$1-$2-$3", `[68]`),
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2-$3", `[17]`),
			format(`(\d)(\d{2})(\d{4})(\d{4})`, "$1 $2 $3 $4", `911`),
			format(`(\d)(\d{4})(\d{2})(\d{4})`, "$1 $2 $3 $4", `9`),
			format(`(\d{4})(\d{2})(\d{4})`, "$1 $2-$3", `[23]`),
		},
		GeneralDesc: desc(`[1-368]\d{5,10}|9\d{10}`, "", 6, 7, 8, 9, 10, 11),
		FixedLine:   desc(`11\d{8}|[2368]\d{9}`, "1123456789", 6, 7, 8, 9, 10),
		Mobile:      desc(`9\d{10}`, "91123456789", 10, 11),
		TollFree:    desc(`80\d{8}`, "8012345678", 10),
	}
}

func mexico() *metadata.Region {
	return &metadata.Region{
		ID:                          "MX",
		CountryCode:                 52,
		InternationalPrefix:         "00",
		NationalPrefix:              "01",
		NationalPrefixForParsing:    `0[12]|04[45](\d{10})`,
		NationalPrefixTransformRule: "1$1",
		NumberFormats: []*metadata.NumberFormat{
			withNationalRule(format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", `33|55|81`), "01 $1"),
			withNationalRule(format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", `[2-9]`), "01 $1"),
			withNationalRule(format(`1(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", `1(?:33|55|81)`), "045 $1"),
			withNationalRule(format(`1(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", `1`), "045 $1"),
		},
		IntlNumberFormats: []*metadata.NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", `33|55|81`),
			format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", `[2-9]`),
			format(`1(\d{2})(\d{4})(\d{4})`, "1 $1 $2 $3", `1(?:33|55|81)`),
			format(`1(\d{3})(\d{3})(\d{4})`, "1 $1 $2 $3", `1`),
		},
		GeneralDesc: desc(`[1-9]\d{9,10}`, "", 10, 11),
		FixedLine:   desc(`[2-9]\d{9}`, "2123456789", 10),
		Mobile:      desc(`1\d{10}`, "12221234567", 11),
	}
}

func newZealand() *metadata.Region {
	return &metadata.Region{
		ID:                  "NZ",
		CountryCode:         64,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		NumberFormats: []*metadata.NumberFormat{
			withNationalRule(format(`(\d)(\d{3})(\d{4})`, "$1-$2 $3", `[3467]`), "0$1"),
			withNationalRule(format(`(\d{2})(\d{3})(\d{3,5})`, "$1-$2 $3", `2`), "0$1"),
		},
		GeneralDesc: desc(`[289]\d{7,9}|[3-7]\d{7}`, "", 8, 9, 10),
		FixedLine:   desc(`(?:3[2-79]|64|[49][2-8]|7[2-57-9])\d{6}`, "32345678", 8),
		Mobile:      desc(`2(?:1\d{6,8}|[089]\d{7})`, "21387835", 8, 9, 10),
		TollFree:    desc(`800\d{6,7}`, "800123456", 9, 10),
	}
}

func singapore() *metadata.Region {
	return &metadata.Region{
		ID:                  "SG",
		CountryCode:         65,
		InternationalPrefix: `0[0-3]\d`,
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d{4})(\d{4})`, "$1 $2", `[369]|8[1-9]`),
		},
		GeneralDesc: desc(`[13689]\d{7,10}`, "", 8, 10, 11),
		FixedLine:   desc(`[36]\d{7}`, "61234567", 8),
		Mobile:      desc(`[89]\d{7}`, "91234567", 8),
		TollFree:    desc(`1800\d{7}`, "18001234567", 11),
	}
}

func japan() *metadata.Region {
	return &metadata.Region{
		ID:                  "JP",
		CountryCode:         81,
		InternationalPrefix: "010",
		NationalPrefix:      "0",
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d{4})`, "*$1", `[2-9]`),
			format(`(\d{4})(\d{4})`, "$1-$2", `007`),
		},
		GeneralDesc: desc(`[2-9]\d{3}|[08]\d{7}`, "", 4, 8),
		FixedLine:   desc(`[2-9]\d{3}`, "2345", 4),
	}
}

func southKorea() *metadata.Region {
	return &metadata.Region{
		ID:                       "KR",
		CountryCode:              82,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: `0(8[1-46-8])?`,
		GeneralDesc:              desc(`[1-9]\d{7,9}`, "", 8, 9, 10),
		FixedLine:                desc(`2\d{7,8}`, "22123456", 8, 9),
		Mobile:                   desc(`1[0-25-9]\d{7,8}`, "1023456789", 9, 10),
	}
}

func andorra() *metadata.Region {
	return &metadata.Region{
		ID:                  "AD",
		CountryCode:         376,
		InternationalPrefix: "00",
		GeneralDesc:         desc(`[1-9]\d{4}`, "", 5),
		FixedLine:           desc(`[1-9]\d{4}`, "12345", 5),
	}
}

func china() *metadata.Region {
	return &metadata.Region{
		ID:                  "CN",
		CountryCode:         86,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d{3})(\d{4})(\d{4})`, "$1 $2 $3", `1[3-9]`),
		},
		GeneralDesc: desc(`1[3-9]\d{9}`, "", 11),
		Mobile:      desc(`1[3-9]\d{9}`, "13123456789", 11),
	}
}

func brazil() *metadata.Region {
	general := desc(`[1-9]\d{9}`, "", 10)
	general.PossibleLengthLocalOnly = []int{8}
	fixed := desc(`[1-9]\d{9}`, "1123456789")
	fixed.PossibleLengthLocalOnly = []int{8}
	return &metadata.Region{
		ID:                          "BR",
		CountryCode:                 55,
		InternationalPrefix:         "00",
		NationalPrefix:              "0",
		NationalPrefixForParsing:    `0(?:(1[245]|2[1-35]|31|4[13]|[56]5|99)(\d{10,11}))?`,
		NationalPrefixTransformRule: "$2",
		GeneralDesc:                 general,
		FixedLine:                   fixed,
		Mobile:                      &metadata.Desc{PossibleLength: []int{-1}},
	}
}

func russia() *metadata.Region {
	return &metadata.Region{
		ID:                  "RU",
		CountryCode:         7,
		InternationalPrefix: "810",
		NationalPrefix:      "8",
		GeneralDesc:         desc(`[347-9]\d{9}`, "", 10),
		FixedLine:           desc(`[34]\d{9}`, "4232022511", 10),
		Mobile:              desc(`9\d{9}`, "9123456789", 10),
	}
}

func poland() *metadata.Region {
	return &metadata.Region{
		ID:                  "PL",
		CountryCode:         48,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		GeneralDesc:         desc(`[1-9]\d{8}`, "", 9),
		FixedLine:           desc(`[1-9]\d{8}`, "123456789", 9),
	}
}

func belarus() *metadata.Region {
	return &metadata.Region{
		ID:                  "BY",
		CountryCode:         375,
		InternationalPrefix: "810",
		NationalPrefix:      "8",
		GeneralDesc:         desc(`[1-9]\d{5,6}`, "", 6, 7),
		FixedLine:           desc(`[1-9]\d{5,6}`, "123456", 6, 7),
	}
}

func uzbekistan() *metadata.Region {
	return &metadata.Region{
		ID:                  "UZ",
		CountryCode:         998,
		InternationalPrefix: "8~10",
		NationalPrefix:      "8",
		GeneralDesc:         desc(`[3-79]\d{8}`, "", 9),
		FixedLine:           desc(`[3-6]\d{8}`, "612201234", 9),
		Mobile:              desc(`9[0-57-9]\d{7}`, "950123456", 9),
	}
}

func colombia() *metadata.Region {
	return &metadata.Region{
		ID:                  "CO",
		CountryCode:         57,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		GeneralDesc:         desc(`[136]\d{9}`, "", 10),
		FixedLine:           desc(`[16]\d{9}`, "6012345678", 10),
		Mobile:              desc(`3\d{9}`, "3211234567", 10),
	}
}

func unitedArabEmirates() *metadata.Region {
	return &metadata.Region{
		ID:                  "AE",
		CountryCode:         971,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		GeneralDesc:         desc(`[2-9]\d{8}`, "", 9),
		UAN:                 desc(`600\d{6}`, "600123456", 9),
	}
}

func reunion() *metadata.Region {
	return &metadata.Region{
		ID:                  "RE",
		CountryCode:         262,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		MainCountryForCode:  true,
		GeneralDesc:         desc(`(?:26|80)\d{7}`, "", 9),
		FixedLine:           desc(`262\d{6}`, "262161234", 9),
		TollFree:            desc(`80\d{7}`, "801234567", 9),
	}
}

func mayotte() *metadata.Region {
	return &metadata.Region{
		ID:                  "YT",
		CountryCode:         262,
		InternationalPrefix: "00",
		NationalPrefix:      "0",
		LeadingDigits:       `269|63`,
		GeneralDesc:         desc(`(?:26|80)\d{7}`, "", 9),
		FixedLine:           desc(`269\d{6}`, "269601234", 9),
		TollFree:            desc(`80\d{7}`, "801234567", 9),
	}
}

func saintHelena() *metadata.Region {
	return &metadata.Region{
		ID:                  "SH",
		CountryCode:         290,
		InternationalPrefix: "00",
		GeneralDesc:         desc(`[2568]\d{3,7}`, "", 4, 6, 8),
		FixedLine:           desc(`2\d{5}`, "212345", 6),
		Mobile:              desc(`[56]\d{3}`, "5123", 4),
		TollFree:            desc(`8\d{7}`, "81234567", 8),
	}
}

func universalTollFree() *metadata.Region {
	return &metadata.Region{
		ID:          metadata.NonGeoRegionID,
		CountryCode: 800,
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d{4})(\d{4})`, "$1 $2"),
		},
		GeneralDesc: desc(`(?:00|[1-9]\d)\d{6}`, "", 8),
		TollFree:    desc(`(?:00|[1-9]\d)\d{6}`, "12345678", 8),
	}
}

func universalPremiumRate() *metadata.Region {
	return &metadata.Region{
		ID:          metadata.NonGeoRegionID,
		CountryCode: 979,
		NumberFormats: []*metadata.NumberFormat{
			format(`(\d)(\d{4})(\d{4})`, "$1 $2 $3"),
		},
		GeneralDesc: desc(`[1359]\d{8}`, "", 9),
		PremiumRate: desc(`[1359]\d{8}`, "123456789", 9),
	}
}

func sharedCostNetwork() *metadata.Region {
	return &metadata.Region{
		ID:          metadata.NonGeoRegionID,
		CountryCode: 882,
		GeneralDesc: desc(`[13]\d{8}`, "", 9),
		Mobile:      desc(`[13]\d{8}`, "312345678", 9),
	}
}
